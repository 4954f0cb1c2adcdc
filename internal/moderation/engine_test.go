package moderation

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/models"
)

// memoryWarnStore is an in-memory WarnStore used by the tests
type memoryWarnStore struct {
	warns  []*models.Warn
	nextID int64
}

func (m *memoryWarnStore) AddWarn(warn *models.Warn) (int64, error) {
	m.nextID++
	warn.ID = m.nextID
	m.warns = append(m.warns, warn)
	return warn.ID, nil
}

func (m *memoryWarnStore) DeleteWarn(id int64) error {
	kept := m.warns[:0]
	for _, warn := range m.warns {
		if warn.ID != id {
			kept = append(kept, warn)
		}
	}
	m.warns = kept
	return nil
}

func (m *memoryWarnStore) WarnsFor(userID string) ([]*models.Warn, error) {
	var out []*models.Warn
	for _, warn := range m.warns {
		if warn.UserID == userID {
			out = append(out, warn)
		}
	}
	return out, nil
}

// fakeChat records role mutations and ban/kick calls
type fakeChat struct {
	mu       sync.Mutex
	muted    map[string]bool // userID -> has mute role
	removals int
	banned   []string
	kicked   []string
	addErr   error
}

func newFakeChat() *fakeChat {
	return &fakeChat{muted: make(map[string]bool)}
}

func (f *fakeChat) EnsureMuteRole(guildID string) (string, error) {
	return "role-muted", nil
}

func (f *fakeChat) AddRole(guildID, userID, roleID, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.muted[userID] = true
	return nil
}

func (f *fakeChat) RemoveRole(guildID, userID, roleID, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.muted[userID] = false
	f.removals++
	return nil
}

func (f *fakeChat) Ban(guildID, userID, reason string) error {
	f.banned = append(f.banned, userID)
	return nil
}

func (f *fakeChat) Kick(guildID, userID, reason string) error {
	f.kicked = append(f.kicked, userID)
	return nil
}

func (f *fakeChat) isMuted(userID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.muted[userID]
}

func (f *fakeChat) removalCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.removals
}

func TestWarnAssignsSequentialIDs(t *testing.T) {
	store := &memoryWarnStore{}
	engine := New(store, newFakeChat(), nil)
	now := time.Unix(1_700_000_000, 0)

	first, err := engine.Warn("guild", "user-1", "mod", "spam", now)
	if err != nil {
		t.Fatalf("Warn() returned error: %v", err)
	}
	second, err := engine.Warn("guild", "user-1", "mod", "insultos", now)
	if err != nil {
		t.Fatalf("Warn() returned error: %v", err)
	}

	if first != 1 || second != 2 {
		t.Errorf("warn ids = %d, %d, want 1, 2", first, second)
	}

	warns, err := engine.Warnings("user-1")
	if err != nil {
		t.Fatalf("Warnings() returned error: %v", err)
	}
	if len(warns) != 2 {
		t.Fatalf("Warnings() returned %d entries, want 2", len(warns))
	}
	if warns[0].Reason != "spam" || warns[1].Reason != "insultos" {
		t.Errorf("warnings out of insertion order: %q, %q", warns[0].Reason, warns[1].Reason)
	}
}

func TestUnwarnMissingIDIsNotAnError(t *testing.T) {
	engine := New(&memoryWarnStore{}, newFakeChat(), nil)

	if err := engine.Unwarn("guild", 42); err != nil {
		t.Errorf("Unwarn() of a missing id returned error: %v", err)
	}
}

func TestMuteExpires(t *testing.T) {
	chat := newFakeChat()
	engine := New(&memoryWarnStore{}, chat, nil)

	if err := engine.Mute("guild", "user-1", 30*time.Millisecond, "spam"); err != nil {
		t.Fatalf("Mute() returned error: %v", err)
	}
	if !chat.isMuted("user-1") {
		t.Fatal("user is not muted right after Mute()")
	}

	time.Sleep(100 * time.Millisecond)

	if chat.isMuted("user-1") {
		t.Error("mute role was not removed after the duration elapsed")
	}
	if got := chat.removalCount(); got != 1 {
		t.Errorf("RemoveRole called %d times, want 1", got)
	}
}

// TestMuteOverlapCoalesces checks that a second mute for the same user
// extends the pending timer instead of letting the first one fire early.
func TestMuteOverlapCoalesces(t *testing.T) {
	chat := newFakeChat()
	engine := New(&memoryWarnStore{}, chat, nil)

	if err := engine.Mute("guild", "user-1", 40*time.Millisecond, "spam"); err != nil {
		t.Fatalf("Mute() returned error: %v", err)
	}
	if err := engine.Mute("guild", "user-1", 150*time.Millisecond, "spam otra vez"); err != nil {
		t.Fatalf("Mute() returned error: %v", err)
	}

	// Past the first duration but inside the second: still muted
	time.Sleep(80 * time.Millisecond)
	if !chat.isMuted("user-1") {
		t.Fatal("first timer fired despite the mute being extended")
	}

	time.Sleep(150 * time.Millisecond)
	if chat.isMuted("user-1") {
		t.Error("mute role was not removed after the extended duration")
	}
	if got := chat.removalCount(); got != 1 {
		t.Errorf("RemoveRole called %d times, want 1", got)
	}
}

// TestReMuteIgnoresStaleExpiry simulates the narrow race where the
// first timer fires just before the re-mute replaces it: the in-flight
// expiry carries the old generation and must not unmute the fresh mute.
func TestReMuteIgnoresStaleExpiry(t *testing.T) {
	chat := newFakeChat()
	engine := New(&memoryWarnStore{}, chat, nil)

	if err := engine.Mute("guild", "user-1", time.Hour, "spam"); err != nil {
		t.Fatalf("Mute() returned error: %v", err)
	}
	if err := engine.Mute("guild", "user-1", time.Hour, "spam otra vez"); err != nil {
		t.Fatalf("Mute() returned error: %v", err)
	}

	// The first mute's callback, arriving late with generation 0
	engine.expireMute("guild:user-1", "guild", "user-1", "role-muted", 0)

	if !chat.isMuted("user-1") {
		t.Fatal("stale expiry unmuted a freshly extended mute")
	}
	if got := chat.removalCount(); got != 0 {
		t.Errorf("RemoveRole called %d times, want 0", got)
	}

	// The current generation still expires normally
	engine.expireMute("guild:user-1", "guild", "user-1", "role-muted", 1)
	if chat.isMuted("user-1") {
		t.Error("current-generation expiry did not remove the mute role")
	}
}

func TestUnmuteCancelsTimer(t *testing.T) {
	chat := newFakeChat()
	engine := New(&memoryWarnStore{}, chat, nil)

	if err := engine.Mute("guild", "user-1", 50*time.Millisecond, "spam"); err != nil {
		t.Fatalf("Mute() returned error: %v", err)
	}
	if err := engine.Unmute("guild", "user-1"); err != nil {
		t.Fatalf("Unmute() returned error: %v", err)
	}
	if chat.isMuted("user-1") {
		t.Fatal("user still muted after Unmute()")
	}

	time.Sleep(100 * time.Millisecond)

	// Only the manual removal; the cancelled timer must not fire
	if got := chat.removalCount(); got != 1 {
		t.Errorf("RemoveRole called %d times, want 1", got)
	}
}

func TestMuteSurfacesRoleErrors(t *testing.T) {
	chat := newFakeChat()
	chat.addErr = errors.New("missing permissions")
	engine := New(&memoryWarnStore{}, chat, nil)

	if err := engine.Mute("guild", "user-1", time.Minute, "spam"); err == nil {
		t.Error("Mute() did not surface the AddRole error")
	}
}

func TestBanAndKickDelegate(t *testing.T) {
	chat := newFakeChat()

	var lines []string
	audit := func(guildID, line string) { lines = append(lines, line) }
	engine := New(&memoryWarnStore{}, chat, audit)

	if err := engine.Ban("guild", "user-1", "cheats"); err != nil {
		t.Fatalf("Ban() returned error: %v", err)
	}
	if err := engine.Kick("guild", "user-2", "spam"); err != nil {
		t.Fatalf("Kick() returned error: %v", err)
	}

	if len(chat.banned) != 1 || chat.banned[0] != "user-1" {
		t.Errorf("banned = %v, want [user-1]", chat.banned)
	}
	if len(chat.kicked) != 1 || chat.kicked[0] != "user-2" {
		t.Errorf("kicked = %v, want [user-2]", chat.kicked)
	}

	// One audit line per action
	if len(lines) != 2 {
		t.Errorf("audit emitted %d lines, want 2", len(lines))
	}
}

// Package moderation implements warn bookkeeping, the mute role
// lifecycle with scheduled unmutes, and ban/kick delegation.
package moderation

import (
	"fmt"
	"sync"
	"time"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/models"
)

// Collaborator abstracts the chat-platform operations the engine needs.
// Implementations must return an error for permission or rate-limit
// failures instead of panicking; the engine surfaces them to the caller.
type Collaborator interface {
	EnsureMuteRole(guildID string) (roleID string, err error)
	AddRole(guildID, userID, roleID, reason string) error
	RemoveRole(guildID, userID, roleID, reason string) error
	Ban(guildID, userID, reason string) error
	Kick(guildID, userID, reason string) error
}

// WarnStore is the warning persistence the engine needs
type WarnStore interface {
	AddWarn(warn *models.Warn) (int64, error)
	DeleteWarn(id int64) error
	WarnsFor(userID string) ([]*models.Warn, error)
}

// AuditFunc receives one human-readable line per moderation action.
// Emission is best-effort: it never blocks or rolls back the action.
type AuditFunc func(guildID, line string)

// Engine coordinates moderation actions. Scheduled unmutes are keyed by
// (guild, user): a second mute for the same user replaces the existing
// timer instead of stacking another one, so an earlier timer can never
// unmute a freshly extended mute. Each entry carries a generation that
// the expiry callback checks: a timer that fired just before being
// replaced cannot stop its in-flight callback, but the stale generation
// turns that callback into a no-op.
type Engine struct {
	store WarnStore
	chat  Collaborator
	audit AuditFunc

	mu     sync.Mutex
	timers map[string]*muteTimer
}

// muteTimer is one scheduled unmute
type muteTimer struct {
	timer *time.Timer
	gen   uint64
}

// New creates a moderation engine. audit may be nil.
func New(store WarnStore, chat Collaborator, audit AuditFunc) *Engine {
	return &Engine{
		store:  store,
		chat:   chat,
		audit:  audit,
		timers: make(map[string]*muteTimer),
	}
}

// Warn records a warning for the user and returns its id
func (e *Engine) Warn(guildID, userID, modID, reason string, now time.Time) (int64, error) {
	warn := &models.Warn{
		UserID:    userID,
		ModID:     modID,
		Reason:    reason,
		Timestamp: now.Unix(),
	}

	id, err := e.store.AddWarn(warn)
	if err != nil {
		return 0, err
	}

	e.auditf(guildID, "⚠️ %s advirtió a %s — %s (warn #%d)", modID, userID, reason, id)
	return id, nil
}

// Unwarn deletes the warning with the given id.
// Deleting a missing id is not an error.
func (e *Engine) Unwarn(guildID string, id int64) error {
	if err := e.store.DeleteWarn(id); err != nil {
		return err
	}
	e.auditf(guildID, "🗑️ Advertencia #%d eliminada", id)
	return nil
}

// Warnings lists the user's warnings in insertion order
func (e *Engine) Warnings(userID string) ([]*models.Warn, error) {
	return e.store.WarnsFor(userID)
}

// Mute grants the mute role to the user and schedules its removal after
// duration. The mute role is created on first use. Overlapping mutes for
// the same (guild, user) coalesce into a single timer that is reset to
// the new duration.
func (e *Engine) Mute(guildID, userID string, duration time.Duration, reason string) error {
	roleID, err := e.chat.EnsureMuteRole(guildID)
	if err != nil {
		return err
	}

	if err := e.chat.AddRole(guildID, userID, roleID, reason); err != nil {
		return err
	}

	key := guildID + ":" + userID

	e.mu.Lock()
	gen := uint64(0)
	if entry, ok := e.timers[key]; ok {
		entry.timer.Stop()
		gen = entry.gen + 1
	}
	entry := &muteTimer{gen: gen}
	entry.timer = time.AfterFunc(duration, func() {
		e.expireMute(key, guildID, userID, roleID, gen)
	})
	e.timers[key] = entry
	e.mu.Unlock()

	e.auditf(guildID, "🔇 %s silenciado durante %s — %s", userID, duration, reason)
	return nil
}

// Unmute removes the mute role immediately and cancels any pending timer.
// Removing a role the user no longer has is tolerated.
func (e *Engine) Unmute(guildID, userID string) error {
	e.mu.Lock()
	key := guildID + ":" + userID
	if entry, ok := e.timers[key]; ok {
		entry.timer.Stop()
		delete(e.timers, key)
	}
	e.mu.Unlock()

	roleID, err := e.chat.EnsureMuteRole(guildID)
	if err != nil {
		return err
	}

	if err := e.chat.RemoveRole(guildID, userID, roleID, "Unmute manual"); err != nil {
		return err
	}

	e.auditf(guildID, "🔊 %s ya no está silenciado", userID)
	return nil
}

// Ban delegates the ban to the chat platform
func (e *Engine) Ban(guildID, userID, reason string) error {
	if err := e.chat.Ban(guildID, userID, reason); err != nil {
		return err
	}
	e.auditf(guildID, "🔨 %s baneado — %s", userID, reason)
	return nil
}

// Kick delegates the kick to the chat platform
func (e *Engine) Kick(guildID, userID, reason string) error {
	if err := e.chat.Kick(guildID, userID, reason); err != nil {
		return err
	}
	e.auditf(guildID, "👢 %s expulsado — %s", userID, reason)
	return nil
}

// expireMute runs when a mute timer fires. A generation mismatch means
// the mute was replaced or cancelled after this timer fired; the
// callback must then do nothing. The role may already be gone (manual
// unmute, user left); the removal error is deliberately ignored.
func (e *Engine) expireMute(key, guildID, userID, roleID string, gen uint64) {
	e.mu.Lock()
	entry, ok := e.timers[key]
	if !ok || entry.gen != gen {
		e.mu.Unlock()
		return
	}
	delete(e.timers, key)
	e.mu.Unlock()

	_ = e.chat.RemoveRole(guildID, userID, roleID, "Unmute automático")
	e.auditf(guildID, "🔊 Fin del silencio de %s", userID)
}

// auditf formats and emits one audit line; a nil audit func is tolerated
func (e *Engine) auditf(guildID, format string, args ...interface{}) {
	if e.audit == nil {
		return
	}
	e.audit(guildID, fmt.Sprintf(format, args...))
}

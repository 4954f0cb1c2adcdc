package reactionroles

import (
	"testing"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/models"
)

// memoryBindingStore is an in-memory Store used by the tests
type memoryBindingStore struct {
	bindings []*models.ReactionRole
}

func (m *memoryBindingStore) Add(binding *models.ReactionRole) error {
	m.bindings = append(m.bindings, binding)
	return nil
}

func (m *memoryBindingStore) Remove(messageID, emoji string) error {
	kept := m.bindings[:0]
	for _, b := range m.bindings {
		if b.MessageID != messageID || b.Emoji != emoji {
			kept = append(kept, b)
		}
	}
	m.bindings = kept
	return nil
}

func (m *memoryBindingStore) Find(messageID, emoji string) (*models.ReactionRole, error) {
	for _, b := range m.bindings {
		if b.MessageID == messageID && b.Emoji == emoji {
			return b, nil
		}
	}
	return nil, nil
}

func TestBindAndResolve(t *testing.T) {
	binder := New(&memoryBindingStore{})

	if err := binder.Bind("msg-1", "⛏️", "role-miner"); err != nil {
		t.Fatalf("Bind() returned error: %v", err)
	}

	roleID, err := binder.RoleToGrant("msg-1", "⛏️")
	if err != nil {
		t.Fatalf("RoleToGrant() returned error: %v", err)
	}
	if roleID != "role-miner" {
		t.Errorf("RoleToGrant() = %q, want %q", roleID, "role-miner")
	}

	roleID, err = binder.RoleToRevoke("msg-1", "⛏️")
	if err != nil {
		t.Fatalf("RoleToRevoke() returned error: %v", err)
	}
	if roleID != "role-miner" {
		t.Errorf("RoleToRevoke() = %q, want %q", roleID, "role-miner")
	}
}

func TestUnknownPairResolvesToNothing(t *testing.T) {
	binder := New(&memoryBindingStore{})

	roleID, err := binder.RoleToGrant("msg-1", "🎮")
	if err != nil {
		t.Fatalf("RoleToGrant() returned error: %v", err)
	}
	if roleID != "" {
		t.Errorf("RoleToGrant() = %q, want empty for an unbound pair", roleID)
	}
}

func TestEmojiIsPartOfTheKey(t *testing.T) {
	binder := New(&memoryBindingStore{})

	if err := binder.Bind("msg-1", "⛏️", "role-miner"); err != nil {
		t.Fatalf("Bind() returned error: %v", err)
	}

	roleID, err := binder.RoleToGrant("msg-1", "🎮")
	if err != nil {
		t.Fatalf("RoleToGrant() returned error: %v", err)
	}
	if roleID != "" {
		t.Errorf("a different emoji on the same message resolved to %q", roleID)
	}
}

func TestUnbind(t *testing.T) {
	binder := New(&memoryBindingStore{})

	if err := binder.Bind("msg-1", "⛏️", "role-miner"); err != nil {
		t.Fatalf("Bind() returned error: %v", err)
	}
	if err := binder.Unbind("msg-1", "⛏️"); err != nil {
		t.Fatalf("Unbind() returned error: %v", err)
	}

	roleID, _ := binder.RoleToGrant("msg-1", "⛏️")
	if roleID != "" {
		t.Errorf("binding survived Unbind(): %q", roleID)
	}

	// Unbinding again must stay silent
	if err := binder.Unbind("msg-1", "⛏️"); err != nil {
		t.Errorf("second Unbind() returned error: %v", err)
	}
}

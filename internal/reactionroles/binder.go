// Package reactionroles maps (message, emoji) pairs to role grants.
package reactionroles

import (
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/models"
)

// Store is the binding persistence the binder needs
type Store interface {
	Add(binding *models.ReactionRole) error
	Remove(messageID, emoji string) error
	Find(messageID, emoji string) (*models.ReactionRole, error)
}

// Binder resolves reactions to role mutations. It is deliberately
// tolerant: unknown (message, emoji) pairs resolve to no role, and
// bindings may reference messages or roles that no longer exist.
type Binder struct {
	store Store
}

// New creates a binder over the given store
func New(store Store) *Binder {
	return &Binder{store: store}
}

// Bind registers that reacting with emoji on the message grants roleID.
// The message and role are not validated against the platform; a stale
// binding is simply never matched again.
func (b *Binder) Bind(messageID, emoji, roleID string) error {
	return b.store.Add(&models.ReactionRole{
		MessageID: messageID,
		Emoji:     emoji,
		RoleID:    roleID,
	})
}

// Unbind removes the binding for the (message, emoji) pair.
// Unbinding a pair that was never bound is not an error.
func (b *Binder) Unbind(messageID, emoji string) error {
	return b.store.Remove(messageID, emoji)
}

// RoleToGrant returns the role a reaction add should grant, or "" when
// the pair is not bound.
func (b *Binder) RoleToGrant(messageID, emoji string) (string, error) {
	return b.lookup(messageID, emoji)
}

// RoleToRevoke returns the role a reaction removal should revoke, or ""
// when the pair is not bound.
func (b *Binder) RoleToRevoke(messageID, emoji string) (string, error) {
	return b.lookup(messageID, emoji)
}

func (b *Binder) lookup(messageID, emoji string) (string, error) {
	binding, err := b.store.Find(messageID, emoji)
	if err != nil {
		return "", err
	}
	if binding == nil {
		return "", nil
	}
	return binding.RoleID, nil
}

package database

import (
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// ReactionRoleService persists reaction-role bindings in the
// "reaction_roles" collection. Duplicate rows for the same
// (message, emoji) pair are tolerated; Find returns the first match.
type ReactionRoleService struct {
	dm *DataManager[models.ReactionRole]
}

// NewReactionRoleService creates a ReactionRoleService backed by the given database
func NewReactionRoleService(db *Database) *ReactionRoleService {
	return &ReactionRoleService{dm: NewDataManager[models.ReactionRole](CollectionReactionRoles, db)}
}

// Add stores a new binding row
func (s *ReactionRoleService) Add(binding *models.ReactionRole) error {
	return s.dm.Insert(binding)
}

// Remove deletes every binding matching the (message, emoji) pair
func (s *ReactionRoleService) Remove(messageID, emoji string) error {
	return s.dm.DeleteAll(bson.M{"msgId": messageID, "emoji": emoji})
}

// Find returns the first binding matching the (message, emoji) pair,
// or nil when there is none
func (s *ReactionRoleService) Find(messageID, emoji string) (*models.ReactionRole, error) {
	return s.dm.Get(bson.M{"msgId": messageID, "emoji": emoji})
}

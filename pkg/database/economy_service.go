package database

import (
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// AccountService persists economy accounts in the "economy" collection.
// It satisfies the store interface of the economy engine.
type AccountService struct {
	dm *DataManager[models.Account]
}

// NewAccountService creates an AccountService backed by the given database
func NewAccountService(db *Database) *AccountService {
	return &AccountService{dm: NewDataManager[models.Account](CollectionEconomy, db)}
}

// Account returns the account for userID, or nil when it does not exist
// yet. The result is a copy: Get may return the cached document, and a
// caller mutating it in place would corrupt the cache on a failed save.
func (s *AccountService) Account(userID string) (*models.Account, error) {
	account, err := s.dm.Get(bson.M{"userId": userID})
	if err != nil || account == nil {
		return nil, err
	}
	copied := *account
	return &copied, nil
}

// SaveAccount upserts the account keyed by its user id
func (s *AccountService) SaveAccount(account *models.Account) error {
	_, err := s.dm.Set(bson.M{"userId": account.UserID}, account)
	return err
}

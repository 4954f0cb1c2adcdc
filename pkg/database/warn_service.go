package database

import (
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// warnSequence is the counter name used to generate warn ids
const warnSequence = "warns"

// WarnService persists warnings in the "warns" collection, one document
// per warning with an autoincremental id taken from the counters collection.
type WarnService struct {
	warns    *DataManager[models.Warn]
	counters *DataManager[models.Counter]
}

// NewWarnService creates a WarnService backed by the given database
func NewWarnService(db *Database) *WarnService {
	return &WarnService{
		warns:    NewDataManager[models.Warn](CollectionWarns, db),
		counters: NewDataManager[models.Counter](CollectionCounters, db),
	}
}

// AddWarn assigns the next sequential id to the warning and stores it
func (s *WarnService) AddWarn(warn *models.Warn) (int64, error) {
	id, err := s.counters.NextSequence(warnSequence)
	if err != nil {
		return 0, err
	}
	warn.ID = id

	if err := s.warns.Insert(warn); err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteWarn removes the warning with the given id.
// Deleting an id that does not exist is not an error.
func (s *WarnService) DeleteWarn(id int64) error {
	return s.warns.Delete(bson.M{"warnId": id})
}

// WarnsFor lists all warnings of a user in insertion order
func (s *WarnService) WarnsFor(userID string) ([]*models.Warn, error) {
	return s.warns.GetAll(bson.M{"userId": userID})
}

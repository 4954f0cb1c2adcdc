package database

import (
	"fmt"

	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/logger"
	"github.com/DarkMCNetwork/DarkMCBotGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

// ShopService persists the static shop catalog in the "shop" collection
type ShopService struct {
	dm *DataManager[models.ShopItem]
}

// NewShopService creates a ShopService backed by the given database
func NewShopService(db *Database) *ShopService {
	return &ShopService{dm: NewDataManager[models.ShopItem](CollectionShop, db)}
}

// Item returns the catalog entry by its unique name, or nil when unknown
func (s *ShopService) Item(name string) (*models.ShopItem, error) {
	return s.dm.Get(bson.M{"item": name})
}

// Items lists the whole catalog
func (s *ShopService) Items() ([]*models.ShopItem, error) {
	return s.dm.GetAll(bson.M{})
}

// Seed inserts the initial catalog entries if they are not present yet.
// Called once at startup; existing rows are left untouched.
func (s *ShopService) Seed() error {
	seed := []models.ShopItem{
		{Item: "VIP", Price: 500, Description: "Special VIP Role"},
	}

	for _, item := range seed {
		existing, err := s.dm.Get(bson.M{"item": item.Item})
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if _, err := s.dm.Set(bson.M{"item": item.Item}, item); err != nil {
			return err
		}
		logger.System(fmt.Sprintf("Artículo sembrado en la tienda: %s (%d monedas)", item.Item, item.Price), "Shop")
	}
	return nil
}

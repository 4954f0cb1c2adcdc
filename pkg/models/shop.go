package models

// ShopItem representa un artículo del catálogo de la tienda.
// El catálogo es estático: se siembra una vez al arrancar.
type ShopItem struct {
	Item        string `bson:"item" json:"item"`
	Price       int64  `bson:"price" json:"price"`
	Description string `bson:"description" json:"description"`
}

package models

// Account representa la cuenta de economía de un usuario.
// Se crea de forma perezosa con el balance inicial al primer acceso.
type Account struct {
	UserID    string `bson:"userId" json:"userId"`
	Balance   int64  `bson:"balance" json:"balance"`
	LastDaily int64  `bson:"lastDaily" json:"lastDaily"` // epoch seconds del último /daily
}

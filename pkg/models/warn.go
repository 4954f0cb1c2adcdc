package models

// Warn representa una advertencia individual en la colección "warns"
type Warn struct {
	ID        int64  `bson:"warnId" json:"warnId"` // secuencial, generado desde la colección counters
	UserID    string `bson:"userId" json:"userId"`
	ModID     string `bson:"modId" json:"modId"`
	Reason    string `bson:"reason" json:"reason"`
	Timestamp int64  `bson:"timestamp" json:"timestamp"`
}

// Counter es el documento de secuencia para ids autoincrementales
type Counter struct {
	Name string `bson:"_id" json:"name"`
	Seq  int64  `bson:"seq" json:"seq"`
}

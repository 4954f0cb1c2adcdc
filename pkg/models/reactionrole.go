package models

// ReactionRole asocia una reacción (mensaje + emoji) con un rol.
// Se permiten filas duplicadas para el mismo par; las búsquedas
// devuelven la primera coincidencia.
type ReactionRole struct {
	MessageID string `bson:"msgId" json:"msgId"`
	Emoji     string `bson:"emoji" json:"emoji"`
	RoleID    string `bson:"roleId" json:"roleId"`
}

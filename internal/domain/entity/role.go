package entity

// Role is a flat lookup entity.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

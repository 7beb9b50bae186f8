package entity

// Event is a corporate event, optionally scoped to a hub or club.
// Date travels as "2006-01-02"; the backend owns the time component.
type Event struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Date        string `json:"fecha"`
	Location    string `json:"ubicacion"`
	HubID       int64  `json:"hubId"`
	ClubID      int64  `json:"clubId"`
}

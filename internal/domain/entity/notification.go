package entity

type NotificationScope string

const (
	ScopeGlobal NotificationScope = "GLOBAL"
	ScopeHub    NotificationScope = "HUB"
	ScopeClub   NotificationScope = "CLUB"
)

// Notification is an append-only record of a mass message sent to users.
type Notification struct {
	ID      int64             `json:"id"`
	Title   string            `json:"titulo"`
	Message string            `json:"mensaje"`
	Scope   NotificationScope `json:"tipoEnvio"`
	HubID   int64             `json:"hubId"`
	ClubID  int64             `json:"clubId"`
	UserID  int64             `json:"usuarioId"`
	SentAt  string            `json:"fechaEnvio"`
}

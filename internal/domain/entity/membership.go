package entity

type MembershipStatus string

const (
	MembershipActive   MembershipStatus = "ACTIVA"
	MembershipInactive MembershipStatus = "INACTIVA"
)

// Membership is a user's enrollment in a club. Tier, points and status can
// be overridden by the admin directly.
type Membership struct {
	ID       int64            `json:"id"`
	UserID   int64            `json:"usuarioId"`
	UserName string           `json:"usuarioNombre"`
	ClubID   int64            `json:"clubId"`
	ClubName string           `json:"clubNombre"`
	TierID   int64            `json:"nivelId"`
	TierName string           `json:"nivelNombre"`
	Points   int              `json:"puntosAcumulados"`
	Status   MembershipStatus `json:"estado"`
}

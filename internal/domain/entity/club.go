package entity

type ClubStatus string

const (
	ClubPending  ClubStatus = "PENDIENTE"
	ClubActive   ClubStatus = "ACTIVO"
	ClubRejected ClubStatus = "RECHAZADO"
	ClubInactive ClubStatus = "INACTIVO"
)

// Club is a venue under a hub with an approval lifecycle:
// PENDIENTE -> ACTIVO/RECHAZADO, ACTIVO <-> INACTIVO.
type Club struct {
	ID        int64      `json:"id"`
	Name      string     `json:"nombreClub"`
	Address   string     `json:"direccion"`
	Schedule  string     `json:"horario"`
	Status    ClubStatus `json:"estado"`
	HostID    int64      `json:"anfitrionId"`
	HostName  string     `json:"anfitrionNombre"`
	HubID     int64      `json:"hubId"`
	HubName   string     `json:"hubNombre"`
	Latitude  float64    `json:"latitud"`
	Longitude float64    `json:"longitud"`
}

package entity

type HubStatus string

const (
	HubActive   HubStatus = "ACTIVO"
	HubInactive HubStatus = "INACTIVO"
)

// Hub groups clubs by region.
type Hub struct {
	ID      int64     `json:"id"`
	Name    string    `json:"nombre"`
	City    string    `json:"ciudad"`
	Address string    `json:"direccion"`
	Status  HubStatus `json:"estado"`
}

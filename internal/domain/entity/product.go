package entity

type ProductStatus string

const (
	ProductActive   ProductStatus = "ACTIVO"
	ProductInactive ProductStatus = "INACTIVO"
)

// Product is a global catalog entry. The admin creates products; hosts only
// toggle local availability, which happens outside this panel.
type Product struct {
	ID          int64         `json:"id"`
	Name        string        `json:"nombre"`
	Description string        `json:"descripcion"`
	Status      ProductStatus `json:"estado"`
	HubID       int64         `json:"hubId"`
	HubName     string        `json:"hubNombre"`
}

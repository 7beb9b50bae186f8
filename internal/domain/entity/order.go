package entity

// Order (pedido) is a club consumption order. The admin surface only reads
// orders, for the orders report; prices deliberately never reach it.
type Order struct {
	ID              int64  `json:"id"`
	ClubID          int64  `json:"clubId"`
	ClubName        string `json:"clubNombre"`
	DesiredSchedule string `json:"horarioDeseado"`
	ConsumptionType string `json:"tipoConsumo"`
	Status          string `json:"estado"`
	OrderedAt       string `json:"fechaPedido"`
}

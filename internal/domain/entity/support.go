package entity

type TicketStatus string

const (
	TicketOpen       TicketStatus = "ABIERTO"
	TicketInProgress TicketStatus = "EN_PROCESO"
	TicketClosed     TicketStatus = "CERRADO"
)

// TicketStatuses lists every state a ticket can be moved to. The admin may
// jump between any two states.
var TicketStatuses = []TicketStatus{TicketOpen, TicketInProgress, TicketClosed}

// SupportTicket is a user-submitted issue with an optional admin response.
type SupportTicket struct {
	ID          int64        `json:"id"`
	Subject     string       `json:"asunto"`
	Description string       `json:"descripcion"`
	Status      TicketStatus `json:"estado"`
	UserID      int64        `json:"usuarioId"`
	UserName    string       `json:"usuarioNombre"`
	Response    string       `json:"respuesta"`
	CreatedAt   string       `json:"fechaCreacion"`
	UpdatedAt   string       `json:"fechaActualizacion"`
}

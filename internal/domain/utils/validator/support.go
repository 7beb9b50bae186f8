package validator

func TicketResponse(response string, _ map[string]interface{}) bool {
	return required(response) && lengthBetween(response, 1, 500)
}

func TicketStatus(status string, _ map[string]interface{}) bool {
	return oneOf(status, "ABIERTO", "EN_PROCESO", "CERRADO")
}

package validator

func ClubName(name string, _ map[string]interface{}) bool {
	return required(name) && lengthBetween(name, 3, 100)
}

func ClubAddress(address string, _ map[string]interface{}) bool {
	return required(address) && lengthBetween(address, 1, 200)
}

// ClubSchedule is optional free text.
func ClubSchedule(schedule string, _ map[string]interface{}) bool {
	return !required(schedule) || lengthBetween(schedule, 1, 100)
}

// RejectReason gates rejection-style actions: a non-empty motive is
// mandatory before the transition fires.
func RejectReason(reason string, _ map[string]interface{}) bool {
	return required(reason)
}

func NumericID(id string, _ map[string]interface{}) bool {
	return intBetween(id, 1, 1<<31-1)
}

package validator

// MembershipPoints must be a non-negative integer.
func MembershipPoints(points string, _ map[string]interface{}) bool {
	return intBetween(points, 0, 1<<31-1)
}

func MembershipStatus(status string, _ map[string]interface{}) bool {
	return oneOf(status, "ACTIVA", "INACTIVA")
}

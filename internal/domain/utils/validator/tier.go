package validator

func TierName(name string, _ map[string]interface{}) bool {
	return required(name) && lengthBetween(name, 3, 50)
}

// TierRequiredVisits is optional; when present it must be an integer in
// [0, 1000].
func TierRequiredVisits(visits string, _ map[string]interface{}) bool {
	return !required(visits) || intBetween(visits, 0, 1000)
}

func TierBenefits(benefits string, _ map[string]interface{}) bool {
	return !required(benefits) || lengthBetween(benefits, 1, 500)
}

package validator

func AchievementName(name string, _ map[string]interface{}) bool {
	return required(name) && lengthBetween(name, 3, 100)
}

func AchievementDescription(description string, _ map[string]interface{}) bool {
	return !required(description) || lengthBetween(description, 1, 500)
}

// AchievementIconURL is optional; when present it must look like a URL.
func AchievementIconURL(iconURL string, _ map[string]interface{}) bool {
	return !required(iconURL) || urlShape(iconURL)
}

// AchievementRequirementType accepts any casing of the allowed tokens.
func AchievementRequirementType(requirementType string, _ map[string]interface{}) bool {
	return !required(requirementType) || oneOf(requirementType, "VISITAS", "CONSUMO", "REFERIDOS")
}

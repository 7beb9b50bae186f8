package validator

func ProductName(name string, _ map[string]interface{}) bool {
	return required(name) && lengthBetween(name, 3, 100)
}

func ProductDescription(description string, _ map[string]interface{}) bool {
	return !required(description) || lengthBetween(description, 1, 500)
}

package validator

func HubName(name string, _ map[string]interface{}) bool {
	return required(name) && lengthBetween(name, 3, 100)
}

func HubCity(city string, _ map[string]interface{}) bool {
	return required(city) && lengthBetween(city, 1, 100)
}

func HubAddress(address string, _ map[string]interface{}) bool {
	return !required(address) || lengthBetween(address, 1, 200)
}

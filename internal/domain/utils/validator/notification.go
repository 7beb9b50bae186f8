package validator

func NotificationTitle(title string, _ map[string]interface{}) bool {
	return required(title) && lengthBetween(title, 1, 100)
}

func NotificationMessage(message string, _ map[string]interface{}) bool {
	return required(message) && lengthBetween(message, 1, 500)
}

func NotificationScope(scope string, _ map[string]interface{}) bool {
	return oneOf(scope, "GLOBAL", "HUB", "CLUB")
}

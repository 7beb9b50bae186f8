package validator

import "net/mail"

func Email(email string, _ map[string]interface{}) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func Password(password string, _ map[string]interface{}) bool {
	return lengthBetween(password, 6, 100)
}

package validator

import (
	"time"

	"github.com/herbalife-clubes/admin-bot/internal/domain/utils/location"
)

func EventName(name string, _ map[string]interface{}) bool {
	return required(name) && lengthBetween(name, 3, 100)
}

func EventDescription(description string, _ map[string]interface{}) bool {
	return !required(description) || lengthBetween(description, 1, 500)
}

// EventDate is optional; a set date may not lie in the past. Today passes:
// the comparison ignores time-of-day and runs in the configured timezone,
// not the process zone.
func EventDate(date string, _ map[string]interface{}) bool {
	return !required(date) || notPast(date, time.Now().In(location.Location))
}

func EventLocation(location string, _ map[string]interface{}) bool {
	return !required(location) || lengthBetween(location, 1, 200)
}

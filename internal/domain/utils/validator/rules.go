package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Minimal http(s)://host.tld/... shape, same as the admin panel forms.
var urlPattern = regexp.MustCompile(`^https?://.+\..+`)

func required(value string) bool {
	return strings.TrimSpace(value) != ""
}

func lengthBetween(value string, min, max int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	return n >= min && n <= max
}

func intBetween(value string, min, max int) bool {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	return n >= min && n <= max
}

func oneOf(value string, allowed ...string) bool {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	for _, v := range allowed {
		if normalized == v {
			return true
		}
	}
	return false
}

func urlShape(value string) bool {
	return urlPattern.MatchString(strings.TrimSpace(value))
}

// notPast compares at day granularity: a date equal to today passes.
func notPast(value string, now time.Time) bool {
	day, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(today)
}

// Package validate checks the string formats accepted for passenger and
// flight fields. All checks are pure and report a plain bool.
package validate

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w\-]+\.)+[\w\-]{2,4}$`)
	phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,4}[-\s.]?[0-9]{1,6}$`)
	// hour may be written with one digit ("9:05"), minutes always two.
	timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhone accepts an optional leading '+', an optional parenthesized
// country code and up to three digit groups separated by space, dot or dash.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsValidTime accepts 24-hour HH:MM.
func IsValidTime(s string) bool {
	return timePattern.MatchString(s)
}

package services

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// unanchored: the address may sit anywhere in the input
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// password length counts UTF-16 code units, so a character outside the
// BMP counts twice
func strongEnough(password string) bool {
	return len(utf16.Encode([]rune(password))) >= MinPasswordLength
}

func sameEmail(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}

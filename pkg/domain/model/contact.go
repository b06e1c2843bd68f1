package model

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether email looks like local@domain.tld.
// Whitespace, a missing "@" and an undotted domain are rejected; nothing else is checked.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizeContact trims name and email and reports whether both are acceptable
func NormalizeContact(name, email string) (string, string, bool) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	return name, email, name != "" && ValidEmail(email)
}

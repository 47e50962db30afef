package domain

import (
	"regexp"
	"strings"
	"time"
)

// Lead is a prospective recipient.
type Lead struct {
	ID           string
	Email        string
	Name         string
	BusinessName string
	Telephone    string
	WebsiteURL   string
	Address      string
	City         string
	State        string
	Category     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Group is a named set of leads used for targeting.
type Group struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

const maxEmailLength = 254

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims and lowercases an address. Lead identity is the
// normalized address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail performs the syntactic check applied before every send.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > maxEmailLength {
		return false
	}
	return emailPattern.MatchString(email)
}

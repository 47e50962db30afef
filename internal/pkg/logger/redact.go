// Package logger holds helpers for keeping personal data out of logs.
package logger

import (
	"log/slog"
	"strings"
)

// RedactEmail keeps the first two characters of the local part and the
// domain.
func RedactEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || domain == "" || strings.Contains(domain, "@") {
		return "***@***"
	}
	if len(local) > 2 {
		return local[:2] + "***@" + domain
	}
	return "***@" + domain
}

// Email returns a slog attribute carrying a redacted address.
func Email(email string) slog.Attr {
	return slog.String("email", RedactEmail(email))
}

package usecase

import (
	"errors"
	"net"
	"strings"

	"outreach/internal/core/port"
)

// transientMarkers are matched against error text when a provider gives
// no structured classification.
var transientMarkers = []string{
	"rate limit",
	"too many",
	"quota",
	"timeout",
	"timed out",
	"connection",
	"temporarily",
	"try again",
}

// IsRetryable reports whether a send error is worth another attempt.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, port.ErrInvalidEmail) {
		return false
	}
	var sendErr *port.SendError
	if errors.As(err, &sendErr) {
		return sendErr.Temporary
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, m := range transientMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

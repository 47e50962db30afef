package usecase

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"outreach/internal/core/port"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o deadline" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"invalid email", port.ErrInvalidEmail, false},
		{"structured temporary", &port.SendError{Code: "421", Temporary: true, Err: errors.New("busy")}, true},
		{"structured permanent wins over text", &port.SendError{Code: "550", Err: errors.New("connection policy rejected")}, false},
		{"wrapped structured", fmt.Errorf("send: %w", &port.SendError{Code: "Throttling", Temporary: true, Err: errors.New("slow down")}), true},
		{"net timeout", timeoutErr{}, true},
		{"rate limit text", errors.New("Rate limit exceeded"), true},
		{"too many text", errors.New("too many connections"), true},
		{"quota text", errors.New("daily quota exceeded"), true},
		{"timeout text", errors.New("socket timeout"), true},
		{"connection text", errors.New("connection refused"), true},
		{"permanent text", errors.New("mailbox unavailable"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsRetryable(tc.err))
		})
	}
}

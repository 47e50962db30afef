package port

import (
	"context"
	"time"

	"outreach/internal/core/domain"
)

// Sender delivers one rendered message through an email provider and
// returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg domain.EmailMessage) (string, error)
}

// SendError is returned by providers that can classify their failures.
// Temporary failures are worth retrying.
type SendError struct {
	Code      string
	Temporary bool
	Err       error
}

func (e *SendError) Error() string {
	if e.Code == "" {
		return e.Err.Error()
	}
	return e.Code + ": " + e.Err.Error()
}

func (e *SendError) Unwrap() error { return e.Err }

// Clock abstracts time for quota windows and follow-up schedules.
type Clock interface {
	Now() time.Time
}

// Locker provides a cross-process mutual exclusion on a key. Unlock must
// be called when ok is true.
type Locker interface {
	TryLock(ctx context.Context, key string) (unlock func(context.Context) error, ok bool, err error)
}

// EventPublisher forwards send record transitions to downstream
// consumers. Publishing is best effort and never fails the caller.
type EventPublisher interface {
	Publish(ctx context.Context, evt domain.SendEvent)
}

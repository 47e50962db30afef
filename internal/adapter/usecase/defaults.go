package usecase

import (
	"context"
	"time"

	"outreach/internal/core/domain"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type nopLocker struct{}

func (nopLocker) TryLock(context.Context, string) (func(context.Context) error, bool, error) {
	return func(context.Context) error { return nil }, true, nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.SendEvent) {}

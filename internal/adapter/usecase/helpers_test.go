package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"outreach/internal/adapter/memory"
	"outreach/internal/core/domain"
	"outreach/internal/core/port"
)

var testNow = time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// sleepRecorder replaces real waits and remembers what was asked for.
type sleepRecorder struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (s *sleepRecorder) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.waits = append(s.waits, d)
	s.mu.Unlock()
	return ctx.Err()
}

func (s *sleepRecorder) Waits() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.waits...)
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Location = time.UTC
	opts.TrackingBaseURL = "https://mail.example.com"
	opts.RetryDelay = time.Second
	opts.StatusUpdateDelay = 100 * time.Millisecond
	return opts
}

type testEnv struct {
	store  *memory.Store
	clock  *fakeClock
	sleeps *sleepRecorder
	svc    *Dispatcher
}

func newTestEnv(t *testing.T, sender port.Sender, opts Options) *testEnv {
	t.Helper()
	clock := newFakeClock(testNow)
	store := memory.NewStoreWithClock(clock.Now)
	return newTestEnvWith(t, store, clock, sender, opts)
}

func newTestEnvWith(t *testing.T, store *memory.Store, clock *fakeClock, sender port.Sender, opts Options) *testEnv {
	t.Helper()
	sleeps := &sleepRecorder{}
	svc := NewDispatcher(Deps{
		Campaigns: store,
		Leads:     store,
		SendLog:   store,
		FollowUps: store,
		Sender:    sender,
		Clock:     clock,
	}, opts, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.sleep = sleeps.Sleep
	return &testEnv{store: store, clock: clock, sleeps: sleeps, svc: svc}
}

func (e *testEnv) addCampaign(t *testing.T, c domain.Campaign) *domain.Campaign {
	t.Helper()
	if c.Subject == "" {
		c.Subject = "Hello {{BusinessName}}"
	}
	if c.Body == "" {
		c.Body = `<html><body><p>Hi {{BusinessName}} in {{City}}</p><a href="https://example.com/offer">Offer</a></body></html>`
	}
	require.NoError(t, e.store.CreateCampaign(context.Background(), &c))
	return &c
}

func (e *testEnv) addLeads(t *testing.T, n int, tweak func(i int, l *domain.Lead)) []domain.Lead {
	t.Helper()
	out := make([]domain.Lead, 0, n)
	for i := 0; i < n; i++ {
		l := domain.Lead{
			Email:        fmt.Sprintf("lead%02d@example.com", i),
			BusinessName: fmt.Sprintf("Business %02d", i),
			City:         "Austin",
			State:        "TX",
			Category:     "Dentist",
		}
		if tweak != nil {
			tweak(i, &l)
		}
		require.NoError(t, e.store.UpsertLead(context.Background(), &l))
		out = append(out, l)
	}
	return out
}

func (e *testEnv) status(t *testing.T, id string) domain.CampaignStatus {
	t.Helper()
	s, err := e.store.GetCampaignStatus(context.Background(), id)
	require.NoError(t, err)
	return s
}

func countRecords(recs []domain.SendRecord, status domain.SendStatus) int {
	n := 0
	for _, r := range recs {
		if r.Status == status {
			n++
		}
	}
	return n
}

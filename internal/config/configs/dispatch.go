package configs

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Dispatch controls pacing and limits of campaign sends. Delays accept Go
// duration strings such as "3s" or "500ms".
type Dispatch struct {
	// DailyLimit caps primary sends per calendar day across all campaigns.
	DailyLimit int `env:"DAILY_LIMIT" envDefault:"700"`
	// BatchSize is the number of leads between status checkpoints.
	BatchSize int `env:"BATCH_SIZE" envDefault:"20"`
	// EmailDelay is waited between two consecutive emails of a run.
	EmailDelay time.Duration `env:"EMAIL_DELAY" envDefault:"3s"`
	// BatchDelay is waited between batches.
	BatchDelay time.Duration `env:"BATCH_DELAY" envDefault:"10s"`

	MaxSendRetries int           `env:"MAX_SEND_RETRIES" envDefault:"3"`
	RetryDelay     time.Duration `env:"RETRY_DELAY" envDefault:"2s"`

	StatusUpdateAttempts int           `env:"STATUS_UPDATE_ATTEMPTS" envDefault:"3"`
	StatusUpdateDelay    time.Duration `env:"STATUS_UPDATE_DELAY" envDefault:"500ms"`

	// Timezone names the location whose calendar day bounds the quota.
	Timezone string `env:"TIMEZONE" envDefault:"Local"`
}

// Location resolves Timezone.
func (c Dispatch) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("dispatch timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

package configs

import "time"

// Redis is optional. When Addr is empty dispatch exclusion relies on the
// campaign status alone.
type Redis struct {
	Addr     string        `env:"ADDRESS"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	LockTTL  time.Duration `env:"LOCK_TTL" envDefault:"10m"`
}

// Enabled reports whether a Redis address is configured.
func (c Redis) Enabled() bool { return c.Addr != "" }

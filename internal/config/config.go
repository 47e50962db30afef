package config

import (
	"github.com/caarlos0/env/v11"

	"outreach/internal/config/configs"
)

// Config is the whole service configuration. Each nested section reads
// its variables under the given envPrefix; defaults live on the section
// types in package configs.
type Config struct {
	Env string `env:"ENV" envDefault:"prod"`

	// StoreDriver is "postgres" or "memory". The memory store loses all
	// data on restart.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	// CronSecret is the bearer token of the operator and cron endpoints.
	// When empty those endpoints reject every request.
	CronSecret string `env:"CRON_SECRET"`

	HTTP     configs.HTTP     `envPrefix:"HTTP_"`
	Log      configs.Logger   `envPrefix:"LOG_"`
	Psql     configs.Postgres `envPrefix:"PSQL_"`
	Dispatch configs.Dispatch `envPrefix:"DISPATCH_"`
	Provider configs.Provider `envPrefix:"PROVIDER_"`
	Tracking configs.Tracking `envPrefix:"TRACKING_"`
	Redis    configs.Redis    `envPrefix:"REDIS_"`
	AMQP     configs.AMQP     `envPrefix:"AMQP_"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

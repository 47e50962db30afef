package configs

import "time"

// HTTP configures the HTTP server. Dispatch requests run for as long as
// the send takes, so no write timeout is applied.
type HTTP struct {
	Port              uint16        `env:"PORT" envDefault:"8080"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"10s"`
	// ShutdownTimeout bounds graceful shutdown, including in-flight runs
	// reaching their final status.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

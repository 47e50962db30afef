package configs

// AMQP is optional. When URL is empty send events are not published.
type AMQP struct {
	URL      string `env:"URL"`
	Exchange string `env:"EXCHANGE" envDefault:"outreach.events"`
}

// Enabled reports whether a broker URL is configured.
func (c AMQP) Enabled() bool { return c.URL != "" }

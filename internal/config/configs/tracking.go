package configs

// Tracking holds the public base URL that open and click tracking links
// point at.
type Tracking struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}

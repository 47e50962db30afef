package configs

import "time"

// Provider selects and configures the outbound email provider. Kind is
// one of "smtp", "ses" or "log"; "log" only writes messages to the logger.
type Provider struct {
	Kind        string        `env:"KIND" envDefault:"log"`
	FromEmail   string        `env:"FROM_EMAIL" envDefault:"noreply@localhost"`
	FromName    string        `env:"FROM_NAME"`
	ReplyTo     string        `env:"REPLY_TO"`
	SendTimeout time.Duration `env:"SEND_TIMEOUT" envDefault:"10s"`

	SMTP SMTP `envPrefix:"SMTP_"`
	SES  SES  `envPrefix:"SES_"`
}

// SMTP configures a relay reached over SMTP. With ImplicitTLS the
// connection is wrapped in TLS from the start (port 465); otherwise
// STARTTLS is used when the server offers it.
type SMTP struct {
	Host        string `env:"HOST"`
	Port        int    `env:"PORT" envDefault:"587"`
	Username    string `env:"USERNAME"`
	Password    string `env:"PASSWORD"`
	ImplicitTLS bool   `env:"IMPLICIT_TLS" envDefault:"false"`
}

// SES configures Amazon SES v2. Empty keys fall back to the default AWS
// credential chain.
type SES struct {
	Region           string `env:"REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"ACCESS_KEY_ID"`
	SecretAccessKey  string `env:"SECRET_ACCESS_KEY"`
	ConfigurationSet string `env:"CONFIGURATION_SET"`
}

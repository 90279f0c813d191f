package config

import (
	"github.com/caarlos0/env/v11"
)

// Config holds process-wide settings resolved once at startup.
// Per-provider OAuth credentials are intentionally absent: those are
// read from the environment at request time (see provider.EnvCredentials)
// so a missing credential degrades a single request, not the process.
type Config struct {
	AppPort      string `env:"PORT" envDefault:"4000"`
	ClientAppURL string `env:"CLIENT_APP_URL" envDefault:"http://localhost:5173"`

	RecaptchaSecret string `env:"RECAPTCHA_SECRET"`

	SSLCommerzSandbox       bool   `env:"SSLCOMMERZ_SANDBOX"`
	SSLCommerzStoreID       string `env:"SSLCOMMERZ_STORE_ID"`
	SSLCommerzStorePassword string `env:"SSLCOMMERZ_STORE_PASSWORD"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

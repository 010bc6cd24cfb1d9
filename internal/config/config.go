package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel    int    `env:"LOG_LEVEL" envDefault:"0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	HTTP        HTTP   `envPrefix:"HTTP_"`
	JWT         JWT    `envPrefix:"JWT_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// JWT contains token signing parameters. Secret deliberately has no default:
// the process refuses to start without one rather than signing tokens with a
// baked-in value.
type JWT struct {
	Secret string        `env:"SECRET,notEmpty"`
	TTL    time.Duration `env:"TTL" envDefault:"168h"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

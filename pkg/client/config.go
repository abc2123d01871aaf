package client

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client-side settings. The API base URL always comes from the
// environment so the same build can point at any deployment.
type Config struct {
	BaseURL string        `envconfig:"OFICINA_API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"OFICINA_API_TIMEOUT" default:"10s"`
}

// LoadConfig reads client configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"escro/models"

	"github.com/caarlos0/env/v11"
)

// LoadConfig starts from the defaults, overlays the JSON file at filename if it
// exists, then overlays ESCRO_* environment variables.
func LoadConfig(filename string) (models.Config, error) {
	config := models.DefaultConfig()

	if filename != "" {
		configFile, err := os.Open(filename)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return config, fmt.Errorf("open config: %w", err)
		default:
			defer configFile.Close()
			if err := json.NewDecoder(configFile).Decode(&config); err != nil {
				return config, fmt.Errorf("decode config %s: %w", filename, err)
			}
		}
	}

	if err := env.Parse(&config); err != nil {
		return config, fmt.Errorf("parse env: %w", err)
	}
	return config, validateConfig(config)
}

// validateConfig rejects settings the router or CORS middleware would refuse at startup.
func validateConfig(config models.Config) error {
	if config.Addr == "" {
		return errors.New("config: addr is empty")
	}
	if len(config.AllowedOrigins) == 0 {
		return errors.New("config: allowed_origins is empty")
	}
	for _, o := range config.AllowedOrigins {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("config: origin %q must start with http:// or https://", o)
		}
	}
	if config.PingInterval.Duration <= 0 || config.PongWait.Duration <= config.PingInterval.Duration {
		return fmt.Errorf("config: ping_interval %s must be positive and shorter than pong_wait %s",
			config.PingInterval, config.PongWait)
	}
	return nil
}

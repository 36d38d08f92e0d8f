package models

import "time"

// Config holds the server settings. Values come from config.json first and
// ESCRO_* environment variables second.
type Config struct {
	Addr           string   `json:"addr" env:"ESCRO_ADDR"`
	AllowedOrigins []string `json:"allowed_origins" env:"ESCRO_ALLOWED_ORIGINS" envSeparator:","`
	Development    bool     `json:"development" env:"ESCRO_DEVELOPMENT"`
	PingInterval   Duration `json:"ping_interval" env:"ESCRO_PING_INTERVAL"`
	PongWait       Duration `json:"pong_wait" env:"ESCRO_PONG_WAIT"`
}

// Duration reads "25s" style values from both JSON and the environment.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		AllowedOrigins: []string{"http://localhost:8080"},
		PingInterval:   Duration{25 * time.Second},
		PongWait:       Duration{60 * time.Second},
	}
}

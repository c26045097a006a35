// Package config handles configuration for the development backend,
// including defaults, JSON overlay, environment and command-line flags.
package config

import "time"

// Config holds runtime settings for the VoltShop development backend.
//
// Fields:
//   - Addr: bind address of the HTTP listener.
//   - BasePath: prefix every route is mounted under.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - AccessTokenValidityDuration / RefreshTokenValidityDuration: token lifetimes.
//     Access tokens must outlive the client's expiry margin (5m by default).
type Config struct {
	Addr                         string        `env:"VOLTSHOP_SERVER_ADDR"`
	BasePath                     string        `env:"VOLTSHOP_SERVER_BASE_PATH"`
	SecretKey                    string        `env:"VOLTSHOP_SERVER_SECRET"`
	AccessTokenValidityDuration  time.Duration `env:"VOLTSHOP_SERVER_ACCESS_TTL"`
	RefreshTokenValidityDuration time.Duration `env:"VOLTSHOP_SERVER_REFRESH_TTL"`
	LogLevel                     string        `env:"VOLTSHOP_SERVER_LOG_LEVEL"`
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.BasePath = "/api"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.RefreshTokenValidityDuration = 24 * time.Hour
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally from command-line
// flags. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

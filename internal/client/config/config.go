package config

import "time"

// Config holds runtime settings for the VoltShop CLI.
//
// Units: the timeouts and ExpiryMargin are time.Duration values.
type Config struct {
	BaseURL        string        `env:"VOLTSHOP_BASE_URL"`
	Storage        string        `env:"VOLTSHOP_STORAGE"`
	SQLitePath     string        `env:"VOLTSHOP_SQLITE_PATH"`
	RedisAddr      string        `env:"VOLTSHOP_REDIS_ADDR"`
	RequestTimeout time.Duration `env:"VOLTSHOP_REQUEST_TIMEOUT"`
	RefreshTimeout time.Duration `env:"VOLTSHOP_REFRESH_TIMEOUT"`
	ExpiryMargin   time.Duration `env:"VOLTSHOP_EXPIRY_MARGIN"`
	LogLevel       string        `env:"VOLTSHOP_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/api"
	c.Storage = "sqlite"
	c.SQLitePath = "voltshop.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RequestTimeout = 15 * time.Second
	c.RefreshTimeout = 10 * time.Second
	c.ExpiryMargin = 300 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones. args excludes the program name.
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

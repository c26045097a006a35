package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/voltshop/internal/flagx"
	"github.com/dmitrijs2005/voltshop/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// may be strings like "15s" or integer nanoseconds.
type JsonConfig struct {
	BaseURL        string         `json:"base_url"`
	Storage        string         `json:"storage"`
	SQLitePath     string         `json:"sqlite_path"`
	RedisAddr      string         `json:"redis_addr"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	RefreshTimeout timex.Duration `json:"refresh_timeout"`
	ExpiryMargin   timex.Duration `json:"expiry_margin"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with the fields present in the file given by -c or
// -config. Without either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	setString(&cfg.BaseURL, jc.BaseURL)
	setString(&cfg.Storage, jc.Storage)
	setString(&cfg.SQLitePath, jc.SQLitePath)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RefreshTimeout.Duration != 0 {
		cfg.RefreshTimeout = jc.RefreshTimeout.Duration
	}
	if jc.ExpiryMargin.Duration != 0 {
		cfg.ExpiryMargin = jc.ExpiryMargin.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

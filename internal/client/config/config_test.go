package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	var c Config
	c.LoadDefaults()
	return &c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://127.0.0.1:8080/api", c.BaseURL)
	assert.Equal(t, "sqlite", c.Storage)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, 10*time.Second, c.RefreshTimeout)
	assert.Equal(t, 300*time.Second, c.ExpiryMargin)
}

func TestLoadConfig_NoSources(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"base_url": "http://json.example/api",
		"storage": "redis",
		"redis_addr": "json:6379",
		"request_timeout": "20s"
	}`), 0o600))

	t.Setenv("VOLTSHOP_STORAGE", "memory")
	t.Setenv("VOLTSHOP_REFRESH_TIMEOUT", "3s")

	cfg, err := LoadConfig([]string{"-config", path, "-a", "http://flag.example/api", "-t", "5", "-unrelated"})
	require.NoError(t, err)

	want := defaults()
	want.BaseURL = "http://flag.example/api"
	want.Storage = "memory"
	want.RedisAddr = "json:6379"
	want.RequestTimeout = 5 * time.Second
	want.RefreshTimeout = 3 * time.Second
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig([]string{"-c", filepath.Join(t.TempDir(), "absent.json")})
		assert.Error(t, err)
	})

	t.Run("bad env duration", func(t *testing.T) {
		t.Setenv("VOLTSHOP_EXPIRY_MARGIN", "soon")
		_, err := LoadConfig(nil)
		assert.Error(t, err)
	})

	t.Run("bad flag value", func(t *testing.T) {
		_, err := LoadConfig([]string{"-t", "abc"})
		assert.Error(t, err)
	})
}

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

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "/api", c.BasePath)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 15*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, 24*time.Hour, c.RefreshTokenValidityDuration)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), c))
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"addr": ":9000",
		"secret_key": "from-json",
		"access_token_validity_duration": "30m"
	}`), 0o600))
	t.Setenv("VOLTSHOP_SERVER_SECRET", "from-env")

	c, err := LoadConfig([]string{"-c", path, "-a", ":9100"})
	require.NoError(t, err)

	want := defaults()
	want.Addr = ":9100"
	want.SecretKey = "from-env"
	want.AccessTokenValidityDuration = 30 * time.Minute
	assert.Empty(t, cmp.Diff(want, c))
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{ nope`), 0o600))

	_, err := LoadConfig([]string{"-config", path})
	assert.Error(t, err)
}

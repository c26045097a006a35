package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/voltshop/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP listen address
//	-b string   base path for all routes
//	-s string   JWT signing secret
//	-t int      access token lifetime (minutes)
//	-r int      refresh token lifetime (minutes)
//	-l string   log level
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-b", "-s", "-t", "-r", "-l"})

	fs := flag.NewFlagSet("voltshop-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.BasePath, "b", cfg.BasePath, "base path for all routes")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "JWT signing secret")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	accessTTL := fs.Int("t", int(cfg.AccessTokenValidityDuration.Minutes()), "access token lifetime (in minutes)")
	refreshTTL := fs.Int("r", int(cfg.RefreshTokenValidityDuration.Minutes()), "refresh token lifetime (in minutes)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.AccessTokenValidityDuration = time.Duration(*accessTTL) * time.Minute
	cfg.RefreshTokenValidityDuration = time.Duration(*refreshTTL) * time.Minute
	return nil
}

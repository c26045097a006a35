package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/voltshop/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   API base URL
//	-s string   storage backend: sqlite, redis or memory
//	-d string   SQLite database path
//	-r string   Redis address
//	-t int      request timeout in seconds
//	-l string   log level: debug, info, warn or error
//
// Other arguments are filtered out with flagx.FilterArgs so unrelated flags
// do not cause a parse error.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-d", "-r", "-t", "-l"})

	fs := flag.NewFlagSet("voltshop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "API base URL")
	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend (sqlite, redis, memory)")
	fs.StringVar(&cfg.SQLitePath, "d", cfg.SQLitePath, "SQLite database path")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	return nil
}

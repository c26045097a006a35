// Package config loads runtime configuration for the VoltShop CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. VOLTSHOP_* environment variables, read with cleanenv.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   API base URL
//	-s string   storage backend (sqlite, redis, memory)
//	-d string   SQLite database path
//	-r string   Redis address
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "base_url": "http://127.0.0.1:8080/api",
//	  "storage": "sqlite",
//	  "sqlite_path": "voltshop.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "request_timeout": "15s",
//	  "refresh_timeout": "10s",
//	  "expiry_margin": "5m",
//	  "log_level": "warn"
//	}
//
// Fields missing from the file keep their previous values.
package config

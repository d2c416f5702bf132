package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "JOBTRACKER_"

// envFiles are loaded into the process environment before variables are
// read. Existing variables are not overridden.
var envFiles = []string{".env"}

// parseEnv overlays Config with JOBTRACKER_* environment variables:
//
//	JOBTRACKER_SERVER_URL   base URL of the backend
//	JOBTRACKER_TIMEOUT      request timeout ("30s" or whole seconds)
//	JOBTRACKER_PROVIDER     LLM provider
//	JOBTRACKER_LOG_LEVEL    log level
//	JOBTRACKER_PREINDEX     true/false
//
// Panics on malformed values, like the other parse stages.
func parseEnv(cfg *Config) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
	}

	if v, ok := os.LookupEnv(envPrefix + "SERVER_URL"); ok && v != "" {
		cfg.ServerURL = v
	}
	if v, ok := os.LookupEnv(envPrefix + "TIMEOUT"); ok && v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(envPrefix + "PROVIDER"); ok && v != "" {
		cfg.Provider = v
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(envPrefix + "PREINDEX"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		cfg.PreIndexOnChat = b
	}
}

// parseTimeout accepts either a Go duration string or whole seconds.
func parseTimeout(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}

package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the jobtracker CLI.
//
// Fields:
//   - ServerURL: base URL of the backend REST API, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - Provider: LLM provider name forwarded to chat and report endpoints.
//   - LogLevel: debug, info, warn or error.
//   - PreIndexOnChat: index unindexed listed documents before each chat message.
//   - MaxTreeDepth: folder depth at which the tree builder stops descending.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	Provider       string
	LogLevel       string
	PreIndexOnChat bool
	MaxTreeDepth   int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000/api"
	c.RequestTimeout = 30 * time.Second
	c.Provider = "ollama"
	c.LogLevel = "info"
	c.PreIndexOnChat = false
	c.MaxTreeDepth = 32
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (and .env), a config file (if given) and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFile(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}

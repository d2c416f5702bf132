package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (in seconds)
//	-p string   LLM provider for chat and reports
//	-l string   log level
//	-preindex   index listed documents before each chat message
//
// The function filters args down to the flags it knows about so that other
// components (the -c config flag) do not interfere.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgsWithBools(args, []string{"-a", "-t", "-p", "-l"}, []string{"-preindex"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the backend API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.Provider, "p", cfg.Provider, "LLM provider")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.PreIndexOnChat, "preindex", cfg.PreIndexOnChat, "index listed documents before chatting")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}

package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://api:9000/api", "-t", "10", "-p", "openai", "-l", "debug", "-preindex"},
			expected: &Config{
				ServerURL:      "http://api:9000/api",
				RequestTimeout: 10 * time.Second,
				Provider:       "openai",
				LogLevel:       "debug",
				PreIndexOnChat: true,
			},
		},
		{
			name:     "unrelated flags ignored",
			args:     []string{"-c", "conf.json", "-t", "5"},
			expected: &Config{RequestTimeout: 5 * time.Second},
		},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

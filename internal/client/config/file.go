package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/jobtracker/internal/flagx"
	"github.com/dmitrijs2005/jobtracker/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file unmarshalling.
// Pointer fields distinguish "absent" from zero values so a partial file
// only overrides what it names.
type FileConfig struct {
	ServerURL      *string         `json:"server_url" yaml:"server_url"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	Provider       *string         `json:"provider" yaml:"provider"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	PreIndexOnChat *bool           `json:"preindex_on_chat" yaml:"preindex_on_chat"`
	MaxTreeDepth   *int            `json:"max_tree_depth" yaml:"max_tree_depth"`
}

// parseFile overlays Config with values loaded from the file named by -c or
// -config. Files ending in .yaml or .yml are read as YAML, everything else
// as JSON. Panics on read or unmarshal errors.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.ServerURL != nil {
		cfg.ServerURL = *fc.ServerURL
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.Provider != nil {
		cfg.Provider = *fc.Provider
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.PreIndexOnChat != nil {
		cfg.PreIndexOnChat = *fc.PreIndexOnChat
	}
	if fc.MaxTreeDepth != nil {
		cfg.MaxTreeDepth = *fc.MaxTreeDepth
	}
}

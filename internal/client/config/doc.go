// Package config loads runtime configuration for the jobtracker CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory and JOBTRACKER_* environment
//     variables (see parseEnv).
//  3. Optional config file (see parseFile) selected via -c or -config.
//     JSON by default, YAML for .yaml/.yml files.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-p string   LLM provider
//	-l string   log level
//	-preindex   pre-index listed documents before chatting
//
// # File schema
//
// Durations accept strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:8000/api",
//	  "request_timeout": "30s",
//	  "provider": "ollama",
//	  "log_level": "info",
//	  "preindex_on_chat": false,
//	  "max_tree_depth": 32
//	}
package config

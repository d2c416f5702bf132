package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnvFiles(t *testing.T, files ...string) {
	t.Helper()
	orig := envFiles
	envFiles = files
	t.Cleanup(func() { envFiles = orig })
}

func Test_parseEnv(t *testing.T) {
	t.Run("variables override defaults", func(t *testing.T) {
		withEnvFiles(t)
		t.Setenv("JOBTRACKER_SERVER_URL", "http://env:8000/api")
		t.Setenv("JOBTRACKER_TIMEOUT", "15")
		t.Setenv("JOBTRACKER_PREINDEX", "true")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://env:8000/api", cfg.ServerURL)
		assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
		assert.True(t, cfg.PreIndexOnChat)
	})

	t.Run("duration string timeout", func(t *testing.T) {
		withEnvFiles(t)
		t.Setenv("JOBTRACKER_TIMEOUT", "1m")

		cfg := &Config{}
		parseEnv(cfg)
		assert.Equal(t, time.Minute, cfg.RequestTimeout)
	})

	t.Run(".env file is loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("JOBTRACKER_PROVIDER=fromdotenv\n"), 0o600))
		withEnvFiles(t, path)
		t.Cleanup(func() { _ = os.Unsetenv("JOBTRACKER_PROVIDER") })

		cfg := &Config{}
		parseEnv(cfg)
		assert.Equal(t, "fromdotenv", cfg.Provider)
	})

	t.Run("missing .env is ignored", func(t *testing.T) {
		withEnvFiles(t, filepath.Join(t.TempDir(), ".env"))
		require.NotPanics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("bad bool panics", func(t *testing.T) {
		withEnvFiles(t)
		t.Setenv("JOBTRACKER_PREINDEX", "maybe")
		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}

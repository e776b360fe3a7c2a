package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/favarr/tmdb"
)

func validConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			URL:        tmdb.DefaultBaseURL,
			ImageURL:   tmdb.DefaultImageBaseURL,
			PosterSize: tmdb.DefaultPosterSize,
			APIKey:     "valid-api-key",
			Timeout:    30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Config)
		errContains string
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "empty image url resolves later", modify: func(c *Config) { c.TMDB.ImageURL = "" }},
		{
			name:        "missing api key",
			modify:      func(c *Config) { c.TMDB.APIKey = "" },
			errContains: "tmdb.api_key is required",
		},
		{
			name:        "placeholder api key",
			modify:      func(c *Config) { c.TMDB.APIKey = "your-api-key-here" },
			errContains: "tmdb.api_key must be set",
		},
		{
			name:        "invalid url",
			modify:      func(c *Config) { c.TMDB.URL = "not a url" },
			errContains: "tmdb.url",
		},
		{
			name:        "zero timeout",
			modify:      func(c *Config) { c.TMDB.Timeout = 0 },
			errContains: "tmdb.timeout",
		},
		{
			name:        "negative user id",
			modify:      func(c *Config) { c.TMDB.UserID = -1 },
			errContains: "tmdb.user_id",
		},
		{
			name:        "invalid logging level",
			modify:      func(c *Config) { c.Logging.Level = "verbose" },
			errContains: "invalid logging.level: verbose",
		},
		{
			name:        "invalid logging format",
			modify:      func(c *Config) { c.Logging.Format = "xml" },
			errContains: "invalid logging.format",
		},
		{
			name:        "empty named filter",
			modify:      func(c *Config) { c.Filter = FilterConfig{"classics": " "} },
			errContains: "filter.classics",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := validate(cfg)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
tmdb:
  api_key: file-key
  session_id: file-session
  user_id: 42
  timeout: 5s
filter:
  classics: "Year < 1980"
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, tmdb.DefaultBaseURL, cfg.TMDB.URL)
	assert.Empty(t, cfg.TMDB.ImageURL)
	assert.Equal(t, "w342", cfg.TMDB.PosterSize)
	assert.Equal(t, "file-key", cfg.TMDB.APIKey)
	assert.Equal(t, 42, cfg.TMDB.UserID)
	assert.Equal(t, 5*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, "Year < 1980", cfg.Filter["classics"])
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "tmdb:\n  api_key: file-key\n")

	t.Setenv("FAVARR_TMDB_API_KEY", "env-key")
	t.Setenv("FAVARR_TMDB_SESSION_ID", "env-session")
	t.Setenv("FAVARR_TMDB_USER_ID", "7")
	t.Setenv("FAVARR_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.TMDB.APIKey)
	assert.Equal(t, "env-session", cfg.TMDB.SessionID)
	assert.Equal(t, 7, cfg.TMDB.UserID)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Empty(t, cfg.TMDB.ImageURL)
}

func TestLoadImageURLOverride(t *testing.T) {
	path := writeConfig(t, "tmdb:\n  api_key: key\n")
	t.Setenv("FAVARR_TMDB_IMAGE_URL", "https://img.example/t/p")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/t/p", cfg.TMDB.ImageURL)
}

func TestLoadErrors(t *testing.T) {
	t.Run("explicit file missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, "tmdb:\n  api_key: key\nlogging:\n  level: loud\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "logging.level")
	})

	t.Run("api key required", func(t *testing.T) {
		path := writeConfig(t, "logging:\n  level: info\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tmdb.api_key is required")
	})
}

func TestTMDBConfigCredentials(t *testing.T) {
	cfg := validConfig().TMDB

	_, err := cfg.Credentials()
	require.Error(t, err)
	assert.True(t, errors.Is(err, tmdb.ErrInvalidConfig))

	cfg.SessionID = "session"
	cfg.UserID = 3
	creds, err := cfg.Credentials()
	require.NoError(t, err)
	assert.Equal(t, tmdb.Credentials{APIKey: "valid-api-key", SessionID: "session", UserID: 3}, creds)

	var _ tmdb.CredentialsProvider = cfg
}

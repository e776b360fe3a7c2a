package config

import (
	"time"

	"github.com/s0up4200/favarr/tmdb"
)

// Config represents the complete configuration structure
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds the catalog service connection and account details
type TMDBConfig struct {
	URL        string        `mapstructure:"url" validate:"required,url"`
	ImageURL   string        `mapstructure:"image_url" validate:"omitempty,url"`
	PosterSize string        `mapstructure:"poster_size" validate:"required"`
	APIKey     string        `mapstructure:"api_key" validate:"required"`
	SessionID  string        `mapstructure:"session_id"`
	UserID     int           `mapstructure:"user_id" validate:"gte=0"`
	Timeout    time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// Credentials implements tmdb.CredentialsProvider.
// Session and user are only checked here, since read-only commands work without them.
func (c TMDBConfig) Credentials() (tmdb.Credentials, error) {
	creds := tmdb.Credentials{
		APIKey:    c.APIKey,
		SessionID: c.SessionID,
		UserID:    c.UserID,
	}
	return creds, creds.Validate()
}

// FilterConfig contains named filter expressions
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
	Color  bool   `mapstructure:"color"`
}

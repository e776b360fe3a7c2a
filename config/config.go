package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/s0up4200/favarr/tmdb"
)

// EnvPrefix prefixes environment overrides, e.g. FAVARR_TMDB_API_KEY
const EnvPrefix = "FAVARR"

const placeholderAPIKey = "your-api-key-here"

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Load loads the configuration from file and environment.
// An explicit configPath must exist; otherwise the standard locations are
// searched and a missing file leaves defaults and environment in effect.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".favarr"))
		}
		v.AddConfigPath("/etc/favarr/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
// Every key gets a default so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("tmdb.url", tmdb.DefaultBaseURL)
	// empty means read it from /configuration
	v.SetDefault("tmdb.image_url", "")
	v.SetDefault("tmdb.poster_size", tmdb.DefaultPosterSize)
	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.session_id", "")
	v.SetDefault("tmdb.user_id", 0)
	v.SetDefault("tmdb.timeout", tmdb.DefaultTimeout)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// report fields by their config key
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		validateInst = v
	})

	return validateInst
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.TMDB.APIKey == placeholderAPIKey {
		return fmt.Errorf("tmdb.api_key must be set to a valid API key")
	}

	for name, expression := range cfg.Filter {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter.%s has an empty expression", name)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return err
	}

	fe := ves[0]
	field := configKey(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "oneof":
		return fmt.Errorf("invalid %s: %v (must be one of: %s)", field, fe.Value(), fe.Param())
	default:
		return fmt.Errorf("%s failed validation for tag '%s'", field, fe.Tag())
	}
}

// configKey turns a validator namespace like Config.tmdb.api_key into tmdb.api_key
func configKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

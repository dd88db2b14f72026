// Package config loads todofeed settings from defaults, an optional config
// file, a .env file, the environment and command-line flags, in rising order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/idilsaglam/todofeed/internal/api"
	"github.com/idilsaglam/todofeed/internal/model"
)

const (
	envPrefix = "TODOFEED"
	envFile   = ".env"
)

// Config holds application configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig points at the REST backend.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	// RequestTimeout of zero disables the client timeout.
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"min=0"`
}

// UIConfig contains presentation preferences.
type UIConfig struct {
	Theme     string `mapstructure:"theme" validate:"oneof=classic neon mono"`
	Filter    string `mapstructure:"filter" validate:"filter"`
	AltScreen bool   `mapstructure:"alt_screen"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

// InitialFilter parses UI.Filter; Validate has already vetted it.
func (c Config) InitialFilter() model.Filter {
	f, _ := model.ParseFilter(c.UI.Filter)
	return f
}

// flagKeys maps CLI flag names onto config keys.
var flagKeys = map[string]string{
	"base-url":  "api.base_url",
	"timeout":   "api.request_timeout",
	"theme":     "ui.theme",
	"filter":    "ui.filter",
	"log-level": "logging.level",
	"log-file":  "logging.file",
}

// Load reads configuration. file may be empty; flags may be nil.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", api.DefaultBaseURL)
	v.SetDefault("api.request_timeout", time.Duration(0))

	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.filter", "all")
	v.SetDefault("ui.alt_screen", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"api.base_url",
		"api.request_timeout",
		"ui.theme",
		"ui.filter",
		"ui.alt_screen",
		"logging.level",
		"logging.file",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	vd := validator.New(validator.WithRequiredStructEnabled())
	_ = vd.RegisterValidation("filter", func(fl validator.FieldLevel) bool {
		_, err := model.ParseFilter(fl.Field().String())
		return err == nil
	})
	return vd
}

// Validate checks every field against its tag.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config %s=%v (%s)", fe.Namespace(), fe.Value(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Package config handles loading and validating the lesson configuration.
//
// Configuration is optional. Without a file every value falls back to its
// env-default, which reproduces the inputs the exercises were written
// with. A YAML file can be supplied through (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// Any field can also be overridden by its env:"..." variable.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/aanand-mishra/go-basics/internal/utils/console"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev staging prod"`

	// Practice is embedded so cfg.Password and cfg.Practice.Password
	// both work.
	Practice `yaml:"practice"`
}

// Practice holds the inputs for the practice exercises.
//
// No env-default tags here: cleanenv applies a default to any field that
// is still zero after the file is read, and "" and 0 are valid inputs.
// The defaults are seeded by Load instead, before the file is parsed.
type Practice struct {
	// Password is the sample scored by the password lesson.
	Password string `yaml:"password" env:"PRACTICE_PASSWORD"`

	// FibonacciN is the index printed by the fibonacci lesson. Anything
	// above 93 does not fit in a uint64 (see fibonacci.MaxIndex).
	FibonacciN uint `yaml:"fibonacci_n" env:"PRACTICE_FIBONACCI_N" validate:"lte=93"`
}

// Default practice inputs, used for any key the file and environment
// leave out.
const (
	DefaultPassword   = "eeeeeeee^%%$%^$%46756756675e"
	DefaultFibonacciN = 4
)

// PathEnv is the environment variable checked before the --config flag.
const PathEnv = "CONFIG_PATH"

// ResolvePath picks the config file path. CONFIG_PATH wins over the
// flag value. An empty result means "no file, use defaults".
func ResolvePath(flagValue string) string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return flagValue
}

// Load reads and validates the configuration.
//
// Values are layered: built-in defaults, then the file (only the keys it
// contains), then environment variables. With an empty path the file step
// is skipped. With a path the file must exist.
func Load(path string) (*Config, error) {
	cfg := Config{
		Practice: Practice{
			Password:   DefaultPassword,
			FibonacciN: DefaultFibonacciN,
		},
	}

	if path == "" {
		// ReadEnv applies any env:"..." variables that are set.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		// Check the file first so a typo in the path gives a clear
		// message rather than a cryptic "open: no such file" later.
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if errors.As(err, &validateErrs) {
		return console.ValidationError(validateErrs)
	}
	return fmt.Errorf("config.Load: validate: %w", err)
}

package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Environment names the deployment stage.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ParseEnvironment accepts the long names and the "dev", "stage" and "prod"
// short forms. Unknown values mean Development.
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

// App is the process-wide configuration shared by the CLI and embedding apps.
type App struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"medisupply"`
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
	Locale      string `env:"APP_LOCALE" envDefault:"es-CO"`
}

func (a App) Environment() Environment {
	return ParseEnvironment(a.Env)
}

// Level parses LogLevel. An empty value returns ok=false so the environment
// preset decides.
func (a App) Level() (level slog.Level, ok bool, err error) {
	if strings.TrimSpace(a.LogLevel) == "" {
		return slog.LevelInfo, false, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(a.LogLevel))); err != nil {
		return slog.LevelInfo, false, fmt.Errorf("%w: %q", ErrInvalidLevel, a.LogLevel)
	}
	return level, true, nil
}

// Validate checks the fields that have a closed set of values.
func (a App) Validate() error {
	if _, _, err := a.Level(); err != nil {
		return err
	}
	switch strings.ToLower(a.LogFormat) {
	case "", "json", "text":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, a.LogFormat)
	}
	return nil
}

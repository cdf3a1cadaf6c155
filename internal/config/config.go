package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

type Config struct {
	// Warn keeps an interactive session quiet unless something goes wrong.
	LogLevel  string `env:"BANK_LOG_LEVEL" env-default:"warn"`
	LogFormat string `env:"BANK_LOG_FORMAT" env-default:"json"`
}

func ProcessEnvironmentVariables() (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("couldn't read environment variables: %w", err)
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("BANK_LOG_LEVEL: %w", err)
	}

	switch cfg.LogFormat {
	case LogFormatJSON, LogFormatText:
	default:
		return nil, fmt.Errorf("BANK_LOG_FORMAT: unknown format %q", cfg.LogFormat)
	}

	return cfg, nil
}

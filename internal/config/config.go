package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

var ErrUnknownLogLevel = errors.New("unknown log level")

type Config struct {
	LogLevel     string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	DisplayOrder string `yaml:"display-order" env:"TTT_DISPLAY_ORDER" env-default:"ascending"`
	NoColor      bool   `yaml:"no-color" env:"TTT_NO_COLOR"`
}

// MustLoad - load configuration from the yml file at path, or from the environment alone when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %s", ErrUnknownLogLevel, that.LogLevel)
	}

	if _, err := that.Order(); err != nil {
		return err
	}

	return nil
}

func (that *Config) Order() (entity.DisplayOrder, error) {
	order, err := entity.ParseDisplayOrder(that.DisplayOrder)
	if err != nil {
		return "", fmt.Errorf("invalid display-order: %w", err)
	}

	return order, nil
}

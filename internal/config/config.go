package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile     string `yaml:"log-file" env:"LOG_FILE" env-default:""`
	HistoryFile string `yaml:"history-file" env:"HISTORY_FILE" env-default:"tictactoe_history.txt"`
	InputMode   string `yaml:"input-mode" env:"INPUT_MODE" env-default:"auto"`
	ClearScreen bool   `yaml:"clear-screen" env:"CLEAR_SCREEN" env-default:"true"`
	Color       bool   `yaml:"color" env:"COLOR" env-default:"true"`
	Redis       Redis  `yaml:"redis"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Key     string `yaml:"key" env:"REDIS_KEY" env-default:"tictactoe:history"`
}

// Load reads the config file at path. A missing file is not an error: the
// environment and defaults are used instead.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	return config, nil
}

// MustLoad - load all configurations, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

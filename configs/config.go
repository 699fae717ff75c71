package configs

import (
	"errors"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	URL                string `default:"sqlite:///db.sqlite"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port           int      `default:"5000"`
	AllowedOrigins []string `default:"*"`
}

type Config struct {
	DB     DB
	Server Server
}

const (
	envPrefix      = "BREWERYSTATS" // env prefix for env vars
	databaseURLEnv = "DATABASE_URL" // overrides DB.URL, as hosted Postgres providers set it
)

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if databaseURL := os.Getenv(databaseURLEnv); databaseURL != "" {
		config.DB.URL = databaseURL
	}

	if config.Server.Port <= 0 || config.DB.MaxOpenConnections <= 0 {
		return nil, ErrConfiguration
	}

	return &config, nil
}

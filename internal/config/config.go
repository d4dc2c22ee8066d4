package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pointspace/pointspace-api/internal/logger"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	LogLevel           string   `mapstructure:"log_level"`
	Port               string   `mapstructure:"port"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// Load reads the YAML config at path. Environment variables override file
// values (API_PORT overrides api.port, etc.), and the file is watched so a
// running server picks up edits without a restart.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed, reloading", zap.String("file", e.Name))

		if err := v.Unmarshal(conf); err != nil {
			zap.L().Error("failed to reload config", zap.Error(err))
			return
		}

		if err := logger.SetLevel(conf.API.LogLevel); err != nil {
			zap.L().Error("failed to apply reloaded log level", zap.Error(err))
		}
	})
	v.WatchConfig()

	return conf, nil
}

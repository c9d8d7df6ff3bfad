package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Values are read by
// Viper from config.yaml or environment variables (SERVER_ADDRESS,
// DATABASE_URI, LOGGING_LEVEL, ...).
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	FormatJSON bool   `mapstructure:"format_json"`
	File       string `mapstructure:"file"`
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is not an error; defaults and env vars apply.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	// Nested keys map to env vars with underscores: server.address -> SERVER_ADDRESS
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "workout_tracker")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format_json", false)

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

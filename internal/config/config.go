package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	API    APIConfig    `mapstructure:"api"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type APIConfig struct {
	RateLimit      float64  `mapstructure:"rate_limit"`
	RateBurst      int      `mapstructure:"rate_burst"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MetricsPrefix  string   `mapstructure:"metrics_prefix"`
}

// envOverrides are applied on top of the file config. Variables carry the
// BOOKING_ prefix, e.g. BOOKING_PORT, BOOKING_LOG_LEVEL.
type envOverrides struct {
	Port      *int     `envconfig:"PORT"`
	LogLevel  *string  `envconfig:"LOG_LEVEL"`
	RateLimit *float64 `envconfig:"RATE_LIMIT"`
	RateBurst *int     `envconfig:"RATE_BURST"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeoutSeconds", 30)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", true)
	viper.SetDefault("api.rate_limit", 50)
	viper.SetDefault("api.rate_burst", 100)
	viper.SetDefault("api.allowed_origins", []string{"*"})
	viper.SetDefault("api.metrics_prefix", "booking_api")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Defaults plus environment are enough to run.
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("booking", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	if env.Port != nil {
		config.Server.Port = *env.Port
	}
	if env.LogLevel != nil {
		config.Log.Level = *env.LogLevel
	}
	if env.RateLimit != nil {
		config.API.RateLimit = *env.RateLimit
	}
	if env.RateBurst != nil {
		config.API.RateBurst = *env.RateBurst
	}

	return &config, nil
}

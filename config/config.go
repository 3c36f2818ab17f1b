package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	SMS    SMSConfig    `mapstructure:"sms"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	DSN string `mapstructure:"dsn"`
}

type SMSConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// The config file is optional; FAST2SMS_API_KEY and DATABASE_URL override it.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("/etc/cluck-credit-tracker/")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("sms.base_url", "")

	v.SetEnvPrefix("CLUCK")
	v.AutomaticEnv()
	_ = v.BindEnv("sms.api_key", "FAST2SMS_API_KEY")
	_ = v.BindEnv("db.dsn", "DATABASE_URL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	API      APIConfig
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds event bus configuration
type RedisConfig struct {
	URL                 string
	EventsStream        string
	AccountEventsStream string
}

// APIConfig holds API server configuration
type APIConfig struct {
	Port int
}

// Load reads configuration from environment variables, with an optional .env
// file as fallback. Environment variables take priority.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "customer_service")
	v.SetDefault("DB_PASSWORD", "customer_service")
	v.SetDefault("DB_NAME", "customer_service")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("CUSTOMER_EVENTS_STREAM", "customer-events")
	v.SetDefault("ACCOUNT_EVENTS_STREAM", "account-events")
	v.SetDefault("API_PORT", 8080)

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			URL:                 v.GetString("REDIS_URL"),
			EventsStream:        v.GetString("CUSTOMER_EVENTS_STREAM"),
			AccountEventsStream: v.GetString("ACCOUNT_EVENTS_STREAM"),
		},
		API: APIConfig{
			Port: v.GetInt("API_PORT"),
		},
	}

	if cfg.API.Port <= 0 {
		return nil, fmt.Errorf("invalid API_PORT: %d", cfg.API.Port)
	}

	return cfg, nil
}

// DSN returns the database connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

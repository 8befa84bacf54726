package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the GORM/pgx connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// KafkaConfig holds Kafka producer settings.
type KafkaConfig struct {
	Brokers []string
}

// RoutingConfig holds settings for the external routing provider.
type RoutingConfig struct {
	BaseURL string
	APIKey  string
}

// ServiceConfig holds all configuration for the fares service.
type ServiceConfig struct {
	Port    string
	AppEnv  string
	DB      DatabaseConfig
	Kafka   KafkaConfig
	Routing RoutingConfig
}

// Load reads configuration from FARES_-prefixed environment variables with
// local-development defaults.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("FARES")
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "fares")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KAFKA_BROKERS", []string{"localhost:9092"})
	v.SetDefault("ROUTING_BASE_URL", "https://routes.googleapis.com")

	cfg := &ServiceConfig{
		Port:   v.GetString("SERVICE_PORT"),
		AppEnv: v.GetString("APP_ENV"),
		DB: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Kafka: KafkaConfig{
			Brokers: v.GetStringSlice("KAFKA_BROKERS"),
		},
		Routing: RoutingConfig{
			BaseURL: v.GetString("ROUTING_BASE_URL"),
			APIKey:  v.GetString("ROUTING_API_KEY"),
		},
	}

	if cfg.Routing.APIKey == "" {
		return nil, fmt.Errorf("FARES_ROUTING_API_KEY is required")
	}

	return cfg, nil
}

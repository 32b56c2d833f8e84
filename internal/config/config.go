package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all bot process configuration
type Config struct {
	BotToken    string
	BotPassword string
	Database    DatabaseConfig
}

// APIConfig holds the read API process configuration
type APIConfig struct {
	Addr     string
	Database DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads bot configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		Database:    loadDatabase(),
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// LoadAPI reads read-API configuration from environment variables.
// The API serves rates only, so bot credentials are not required.
func LoadAPI() (*APIConfig, error) {
	_ = godotenv.Load()

	cfg := &APIConfig{
		Addr:     getEnv("API_ADDR", ":8080"),
		Database: loadDatabase(),
	}

	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		Name:     getEnv("DB_NAME", "operkassa"),
		User:     getEnv("DB_USER", "operkassa"),
		Password: os.Getenv("DB_PASSWORD"),
	}
}

// DSN returns PostgreSQL connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port               string
	DBConn             string
	LogLevel           string
	JWTSecret          string
	TokenExpireMinutes int
	SeedUsername       string
	SeedPassword       string
	SMTPHost           string
	SMTPPort           string
	SMTPUsername       string
	SMTPPassword       string
	SenderEmail        string
}

// NewConfig loads configuration from a .env file (when present) and
// environment variables
func NewConfig() (*Config, error) {
	// Missing .env is fine, real environments set variables directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBConn:       getEnv("DB_CONN", "host=localhost port=5432 user=swole password=swole dbname=swole sslmode=disable"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		SeedUsername: getEnv("SEED_USERNAME", "username"),
		SeedPassword: getEnv("SEED_PASSWORD", "password"),
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", ""),
	}

	expire, err := strconv.Atoi(getEnv("TOKEN_EXPIRE", "1440"))
	if err != nil || expire <= 0 {
		return nil, fmt.Errorf("TOKEN_EXPIRE must be a positive number of minutes")
	}
	cfg.TokenExpireMinutes = expire

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// SMTPConfigured reports whether outgoing mail can be sent.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SenderEmail != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

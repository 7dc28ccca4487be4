package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration,
// populated from environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Token    TokenConfig
	Email    EmailConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry int // minutes
}

// TokenConfig tunes the emailed confirmation codes.
type TokenConfig struct {
	Secret string
	TTL    int // hours a confirmation code stays valid
}

type EmailConfig struct {
	SMTPHost string
	SMTPPort int
	Username string
	Password string
	From     string
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "ReviewDB API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "reviewdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenExpiry: getEnvInt("JWT_ACCESS_EXPIRY", 1440), // 24 hours
		},
		Token: TokenConfig{
			Secret: getEnv("TOKEN_SECRET", getEnv("JWT_SECRET", "your-secret-key-change-in-production")),
			TTL:    getEnvInt("TOKEN_TTL_HOURS", 24),
		},
		Email: EmailConfig{
			SMTPHost: getEnv("SMTP_HOST", "localhost"),
			SMTPPort: getEnvInt("SMTP_PORT", 1025),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("EMAIL_FROM", "noreply@reviewdb.local"),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate enforces settings that must not ship with defaults.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	}

	if c.JWT.AccessTokenExpiry <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRY must be positive")
	}
	if c.Token.TTL <= 0 {
		return fmt.Errorf("TOKEN_TTL_HOURS must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"reviewdb-backend/pkg/logger"
)

func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	// .env is for development; production uses system env vars.
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using system environment variables", nil)
	}

	env := getEnv("APP_ENV", "development")
	logger.Init(env)

	// ========================================
	// SET GIN MODE
	// ========================================
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ========================================
	// START SERVER
	// ========================================
	Serve()
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

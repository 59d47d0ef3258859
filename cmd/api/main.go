package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tony-ross/netflix-catalog/pkg/logger"
)

func main() {
	// .env is a development convenience; production supplies real
	// environment variables.
	dotenvErr := godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Init(env)

	if dotenvErr != nil {
		logger.Debug("no .env file found, using system environment variables")
	}

	Serve()
}

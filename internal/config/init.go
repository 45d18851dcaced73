package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Init loads the .env file and fails fast on missing required settings.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	for _, key := range []string{"MONGO_URI", "MONGO_DB", "REDIS_ADDR", "JWT_SECRET"} {
		if os.Getenv(key) == "" {
			Logger.Fatal(key + " is not set")
		}
	}
}

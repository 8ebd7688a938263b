package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything main needs to wire the service together.
type Config struct {
	Port            string
	AllowOrigins    string
	ProjectID       string
	CredentialsJSON string
	WebAPIKey       string
	StorageBucket   string
}

// Load reads the .env file if present and falls back to the process
// environment. Missing the .env file is fine in production where the
// variables are set directly.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system environment variables.")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		AllowOrigins:    getEnv("CORS_HOSTS", "http://localhost:3000"),
		ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		CredentialsJSON: getEnv("FIREBASE_CREDENTIALS_JSON", ""),
		WebAPIKey:       getEnv("FIREBASE_WEB_API_KEY", ""),
		StorageBucket:   getEnv("FIREBASE_STORAGE_BUCKET", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

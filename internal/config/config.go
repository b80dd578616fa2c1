package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const defaultPort = "8080"

// Load reads the env file named by START (falling back to .env) and
// checks that everything the app cannot run without is set.
func Load() {
	envFile := os.Getenv("START")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("No env file at %s, relying on the environment", envFile)
	}

	if os.Getenv("MONGO_URI") == "" {
		log.Fatalf("MONGO_URI is not set in environment")
	}
	if os.Getenv("MONGO_DB_NAME") == "" {
		log.Fatalf("MONGO_DB_NAME is not set in environment")
	}
	if os.Getenv("SESSION_SECRET") == "" {
		log.Fatalf("SESSION_SECRET is not set in environment")
	}
}

// Port returns the listening port, defaulting to 8080.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return defaultPort
}

package confs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadConfig loads environment variables from a .env file if present and
// validates the settings the server cannot run without.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

// Port returns the HTTP listen port, defaulting to 8080.
func Port() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8080"
}

// JWTSecret returns the token signing key. Kept separate from the database
// credentials; the two must never share material.
func JWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

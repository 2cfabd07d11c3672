package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvVariables reads a .env file when present. A missing file is not
// an error; the process environment wins either way.
func LoadEnvVariables() {
	godotenv.Load()
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func DatabasePath() string {
	return getenv("LIBRARY_DB", "library.db")
}

func JwtSecret() []byte {
	return []byte(getenv("JWT_SECRET", "library_secret_key"))
}

func AdminPassword() string {
	return getenv("ADMIN_PASSWORD", "admin")
}

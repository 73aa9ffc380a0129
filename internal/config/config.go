package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string
	DBPath      string
	JWTSecret   string
	APIUser     string
	APIPassword string
}

// Load reads configuration from the environment, with a .env file as an
// optional local override
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/boreholes.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "change-me-in-production"
	}

	return &Config{
		Port:        port,
		DBPath:      dbPath,
		JWTSecret:   jwtSecret,
		APIUser:     os.Getenv("API_USER"),
		APIPassword: os.Getenv("API_PASSWORD"),
	}
}

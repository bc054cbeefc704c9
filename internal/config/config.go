package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Persistence driver names.
const (
	DriverSnapshot = "snapshot"
	DriverDatabase = "database"
	DriverREST     = "rest"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Persistence
	PersistenceDriver string
	PersistTimeout    time.Duration

	// Snapshot driver
	SnapshotPath string

	// Database driver
	DBDriver   string // sqlite or postgres
	DBPath     string // sqlite file path
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// REST driver
	RESTBaseURL string
	RESTAPIKey  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Demo account (the app is single-user per session)
	DemoEmail    string
	DemoName     string
	DemoPassword string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Persistence
		PersistenceDriver: getEnv("PERSISTENCE_DRIVER", DriverSnapshot),
		SnapshotPath:      getEnv("SNAPSHOT_PATH", "finance-store.json"),

		// Database
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBPath:     getEnv("DB_PATH", "finance_tracker.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "finance"),
		DBPassword: getEnv("DB_PASSWORD", "finance"),
		DBName:     getEnv("DB_NAME", "finance_tracker"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// REST backend
		RESTBaseURL: getEnv("REST_BASE_URL", ""),
		RESTAPIKey:  getEnv("REST_API_KEY", ""),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// Demo account
		DemoEmail:    getEnv("DEMO_USER_EMAIL", "user@example.com"),
		DemoName:     getEnv("DEMO_USER_NAME", "Demo User"),
		DemoPassword: getEnv("DEMO_USER_PASSWORD", "password123"),
	}

	config.PersistTimeout = getDurationEnv("PERSIST_TIMEOUT", 5*time.Second)
	config.JWTExpirationDur = getDurationEnv("JWT_EXPIRES_IN", 24*time.Hour)

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv parses a duration environment variable, falling back to
// the default on absence or parse failure.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

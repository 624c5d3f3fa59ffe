package config // package config loads application configuration from environment variables

import (
	"os" // os provides access to environment variables

	"github.com/joho/godotenv" // godotenv side-loads a .env file into the environment
)

// Defaults applied when a variable is unset or empty.  The database default
// points at the local card collector database; the secret default is a dev
// placeholder and must be replaced in any real deployment.
const (
	defaultSecretKey   = "dev-key-please-change"
	defaultDatabaseURL = "postgresql://localhost/card_collector_db"
	defaultPort        = "5000"
)

// Config holds the resolved runtime configuration.  The snapshot is built
// once at startup and never mutated afterwards; consumers receive it by
// value and cannot observe later changes to the process environment.
type Config struct {
	SecretKey   string // secret used for cryptographic signing by the application
	DatabaseURL string // connection string for the persistence layer
	Port        string // HTTP port to bind the server to
}

// LoadEnvFile loads variable definitions from the file at path into the
// process environment.  It must run before Load so that file-defined
// variables participate in resolution.  Variables already present in the
// environment keep their values; the file never overrides them.  A missing
// file is not an error, so deployments without a .env work unchanged.
func LoadEnvFile(path string) {
	_ = godotenv.Load(path)
}

// Load resolves every setting from the environment and returns the snapshot.
// Resolution is total: a variable that is unset or empty falls back to its
// literal default, so Load cannot fail.  Values are not validated here; in
// particular the database URL is neither parsed nor dialed.
func Load() Config {
	return Config{
		SecretKey:   getEnv("SECRET_KEY", defaultSecretKey),     // signing secret
		DatabaseURL: getEnv("DATABASE_URL", defaultDatabaseURL), // persistence DSN
		Port:        getEnv("PORT", defaultPort),                // HTTP listen port
	}
}

// getEnv returns the value of the environment variable named by key, or
// fallback when the variable is unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

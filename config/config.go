package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is loaded once at
// startup and treated as immutable afterwards; components that must see
// fresh values per call (the gateway, the allowlist check) receive it by
// injection rather than reading the environment themselves.
type Config struct {
	Environment string
	Port        string

	// StoreURL is the events store endpoint without credentials. The read
	// key authorizes public read-only access, the service key privileged
	// read/write access; both are user:password pairs.
	StoreURL        string
	StoreReadKey    string
	StoreServiceKey string

	// AdminUserIDs is the comma-separated allowlist of caller identities
	// permitted to create, update, and delete events.
	AdminUserIDs string

	// AdminJWTSecret verifies (and, for the local token tool, signs) admin
	// bearer tokens.
	AdminJWTSecret string

	CORSOrigins []string

	// MigrateOnStart applies pending migrations from MigrationsPath before
	// the server starts listening.
	MigrateOnStart bool
	MigrationsPath string
}

// Load loads configuration from environment variables. Outside production it
// first attempts to load a .env file; a missing .env is not an error because
// the variables may come from the surrounding environment.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:     env,
		Port:            os.Getenv("PORT"),
		StoreURL:        firstEnv("STORE_URL", "DATABASE_URL"),
		StoreReadKey:    firstEnv("STORE_READ_KEY", "STORE_ANON_KEY"),
		StoreServiceKey: firstEnv("STORE_SERVICE_KEY", "STORE_SECRET_KEY"),
		AdminUserIDs:    os.Getenv("ADMIN_USER_IDS"),
		AdminJWTSecret:  os.Getenv("ADMIN_JWT_SECRET"),
		MigrateOnStart:  os.Getenv("MIGRATE_ON_START") == "true",
		MigrationsPath:  os.Getenv("MIGRATIONS_PATH"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "migrations"
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg, nil
}

// firstEnv returns the first non-empty value among the given variable names.
// Several settings kept their older variable names as fallbacks when they
// were renamed.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

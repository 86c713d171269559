package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// Catalog source names accepted by CATALOG_SOURCE.
	SourceStatic = "static"
	SourceSQLite = "sqlite"

	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@2.0.4"

	// ServerRequestTimeout bounds both reads and writes.
	ServerRequestTimeout = 30 * time.Second
)

var (
	ServerPort         string
	ServerRateLimitMax int
	ServerRateLimitExp time.Duration

	CatalogSource string
	DatabaseURL   string

	// SalesEmail receives "Contact Seller" inquiries.
	SalesEmail string
)

func init() {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] Failed to load .env: %v", err)
	}
	Load()
}

// Load (re)reads every setting from the environment.
func Load() {
	ServerPort = getEnv("PORT", "8000")
	ServerRateLimitMax = getEnvInt("RATE_LIMIT_MAX", 120)
	ServerRateLimitExp = getEnvDuration("RATE_LIMIT_EXPIRATION", time.Minute)
	CatalogSource = getEnv("CATALOG_SOURCE", SourceStatic)
	DatabaseURL = getEnv("DATABASE_URL", "file:carfinder.db")
	SalesEmail = getEnv("SALES_EMAIL", "sales@carfinder.com")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[config] Invalid %s=%q, using %d", key, value, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("[config] Invalid %s=%q, using %s", key, value, fallback)
		return fallback
	}
	return d
}

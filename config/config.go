package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration, resolved from the environment once
// at startup.
type Config struct {
	Port string

	SupplierBaseURL  string
	SupplierUsername string
	SupplierPassword string
	SupplierTimeout  time.Duration

	ConfirmationMinLen int
	ConfirmationMaxLen int
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// Load resolves the configuration. Supplier credentials may legitimately be
// empty in development; the client then sends no Authorization header.
func Load() Config {
	return Config{
		Port:             envOrDefault("PORT", "8080"),
		SupplierBaseURL:  envOrDefault("SUPPLIER_BASE_URL", "http://api.travzillapro.com/HotelServiceRest"),
		SupplierUsername: os.Getenv("SUPPLIER_USERNAME"),
		SupplierPassword: os.Getenv("SUPPLIER_PASSWORD"),
		SupplierTimeout:  time.Duration(envInt("SUPPLIER_TIMEOUT_SECONDS", 30)) * time.Second,

		ConfirmationMinLen: envInt("CONFIRMATION_MIN_LENGTH", 3),
		ConfirmationMaxLen: envInt("CONFIRMATION_MAX_LENGTH", 20),
	}
}

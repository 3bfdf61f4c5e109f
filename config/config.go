package config

import "os"

// JWTSecret used to sign session tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "campus_eats_super_secret_2026"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DBPath is the sqlite file holding the key-value store.
func DBPath() string {
	return getEnv("CAMPUS_EATS_DB", "campus_eats.db")
}

// Port the HTTP server listens on.
func Port() string {
	return getEnv("PORT", "8080")
}

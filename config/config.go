package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	// APP_URL is the base URL the browser-facing pages live on; checkout
	// success/cancel redirects point back at it.
	APP_URL     string
	CORS_ORIGIN string

	// PAYMENT_PROVIDER selects "stripe" (default) or "paypal".
	PAYMENT_PROVIDER string

	PAYPAL_CLIENT_ID     string
	PAYPAL_CLIENT_SECRET string
	PAYPAL_PLAN_ID       string
	PAYPAL_MODE          string
)

// LoadEnv reads .env if present and populates the package variables.
// Missing secrets do NOT kill the process: endpoints that need them
// respond 500 instead, so the demo keeps running without a full setup.
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = getEnv("DB_URL", "")
	JWT_SECRET = getEnv("JWT_SECRET", "")

	APP_URL = getEnv("APP_URL", "http://localhost:3000")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	PAYMENT_PROVIDER = getEnv("PAYMENT_PROVIDER", "stripe")

	PAYPAL_CLIENT_ID = getEnv("PAYPAL_CLIENT_ID", "")
	PAYPAL_CLIENT_SECRET = getEnv("PAYPAL_CLIENT_SECRET", "")
	PAYPAL_PLAN_ID = getEnv("PAYPAL_PLAN_ID", "")
	PAYPAL_MODE = getEnv("PAYPAL_MODE", "sandbox")
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

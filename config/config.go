// config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all environment-sourced settings for the server.
type Config struct {
	Port        string
	OpenClawBin string

	// Payment matching
	Receiver      string
	TokenContract string
	Price         float64

	// Order store
	OrdersFile string
	MongoURI   string

	// Confirmation email (optional)
	PostmarkToken string
	EmailSender   string

	// Operator surface (optional)
	JWTSecret         string
	AdminPasswordHash string
}

// Load reads configuration from the environment, after loading a .env
// file if one is present. Addresses are lowercased here so every later
// comparison works on a normalized form.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	return Config{
		Port:              getenv("PORT", "8787"),
		OpenClawBin:       getenv("OPENCLAW_BIN", "openclaw"),
		Receiver:          strings.ToLower(os.Getenv("RECEIVER")),
		TokenContract:     strings.ToLower(os.Getenv("USDC_CONTRACT_BASE")),
		Price:             getenvFloat("PRICE", 19.99),
		OrdersFile:        getenv("ORDERS_FILE", "orders.json"),
		MongoURI:          os.Getenv("MONGO_URI"),
		PostmarkToken:     os.Getenv("POSTMARK_API_TOKEN"),
		EmailSender:       os.Getenv("EMAIL_SENDER"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid %s value %q, using default %v", key, v, fallback)
		return fallback
	}
	return f
}

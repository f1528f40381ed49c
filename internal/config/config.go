// Package config reads process settings from the environment, after loading
// an optional .env file.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/elegant-tiles/storefront/internal/domain/cart"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

type Config struct {
	HTTPAddr string
	LogMode  string
	LogFile  string

	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroup   string

	Pricing cart.Pricing

	SearchDebounce   time.Duration
	SessionIdleTTL   time.Duration
	SessionSweepSpec string

	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
	StudioInbox     string
	NotifierWorkers int
}

// LoadEnv loads .env files into the environment. Missing files are fine and
// variables already set win.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// Load reads every setting, falling back to defaults for unset or malformed
// values.
func Load() Config {
	defaults := cart.DefaultPricing()

	return Config{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		LogMode:  getEnv("LOG_MODE", "development"),
		LogFile:  getEnv("LOG_FILE", ""),

		KafkaEnabled: cast.ToBool(getEnv("KAFKA_ENABLED", "false")),
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "storefront-events"),
		KafkaGroup:   getEnv("KAFKA_GROUP", "storefront-notifier"),

		Pricing: cart.Pricing{
			FreeShippingThreshold: getDecimal("FREE_SHIPPING_THRESHOLD", defaults.FreeShippingThreshold),
			ShippingFee:           getDecimal("SHIPPING_FEE", defaults.ShippingFee),
			TaxRate:               getDecimal("TAX_RATE", defaults.TaxRate),
		},

		SearchDebounce:   getDuration("SEARCH_DEBOUNCE", 300*time.Millisecond),
		SessionIdleTTL:   getDuration("SESSION_IDLE_TTL", 2*time.Hour),
		SessionSweepSpec: getEnv("SESSION_SWEEP_SPEC", "@every 5m"),

		SMTPHost:        getEnv("SMTP_HOST", "localhost"),
		SMTPPort:        cast.ToInt(getEnv("SMTP_PORT", "1025")),
		SMTPUsername:    getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:        getEnv("SMTP_FROM", "noreply@eleganttiles.co.ke"),
		StudioInbox:     getEnv("STUDIO_INBOX", "studio@eleganttiles.co.ke"),
		NotifierWorkers: cast.ToInt(getEnv("NOTIFIER_WORKERS", "4")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := decimal.NewFromString(value)
	if err != nil || d.IsNegative() {
		return defaultValue
	}
	return d
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := cast.ToDurationE(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

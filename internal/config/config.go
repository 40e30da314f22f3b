// Package config resolves all runtime settings once, in main, so nothing
// downstream reads ambient process state.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

var currencyRe = regexp.MustCompile(`^[A-Za-z]{3,}$`)

type Config struct {
	Addr        string
	DatabaseURL string
	RedisURL    string // optional; enables the Redis-backed rate limiter

	// Price calculator settings, all overridable without code changes.
	ExchangeRateURL string
	LocalCurrency   string
	ProfitMargin    decimal.Decimal
	RequestTimeout  time.Duration
}

// Load reads and validates the environment. Call after godotenv has run.
func Load() (Config, error) {
	cfg := Config{
		Addr:            getenv("ADDR", ":3000"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		ExchangeRateURL: os.Getenv("EXCHANGE_API_URL"),
		LocalCurrency:   os.Getenv("LOCAL_CURRENCY"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL not set")
	}
	if cfg.ExchangeRateURL == "" {
		return Config{}, fmt.Errorf("EXCHANGE_API_URL not set")
	}
	if !currencyRe.MatchString(cfg.LocalCurrency) {
		return Config{}, fmt.Errorf("LOCAL_CURRENCY %q is not a currency code", cfg.LocalCurrency)
	}

	margin, err := decimal.NewFromString(getenv("PROFIT_MARGIN", "0.40"))
	if err != nil || margin.IsNegative() {
		return Config{}, fmt.Errorf("PROFIT_MARGIN must be a non-negative fraction")
	}
	cfg.ProfitMargin = margin

	timeout, err := time.ParseDuration(getenv("EXCHANGE_TIMEOUT", "5s"))
	if err != nil || timeout <= 0 {
		return Config{}, fmt.Errorf("EXCHANGE_TIMEOUT must be a positive duration")
	}
	cfg.RequestTimeout = timeout

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

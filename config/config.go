package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultEarningsURL  = "https://api.savvytrader.com/pricing/assets/earnings/calendar"
	DefaultYahooURL     = "https://query1.finance.yahoo.com"
	DefaultOutputDir    = "earnings_watchlists"
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"
	DefaultHTTPTimeout  = 30 * time.Second
	defaultMarketCapMin = "10000000000"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	EarningsURL        string
	YahooURL           string
	OutputDir          string
	UserAgent          string
	MarketCapThreshold decimal.Decimal
	HTTPTimeout        time.Duration
	LookupRate         float64 // requests per second against Yahoo, 0 = unlimited
	LogLevel           log.Level
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first if present; variables
// already set in the shell take precedence over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		EarningsURL: getenv("EARNINGS_URL", DefaultEarningsURL),
		YahooURL:    getenv("YAHOO_URL", DefaultYahooURL),
		OutputDir:   getenv("OUTPUT_DIR", DefaultOutputDir),
		UserAgent:   getenv("USER_AGENT", DefaultUserAgent),
	}

	threshold, err := decimal.NewFromString(getenv("MARKET_CAP_THRESHOLD", defaultMarketCapMin))
	if err != nil {
		return nil, fmt.Errorf("invalid MARKET_CAP_THRESHOLD: %w", err)
	}
	cfg.MarketCapThreshold = threshold

	timeout, err := time.ParseDuration(getenv("HTTP_TIMEOUT", DefaultHTTPTimeout.String()))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	rate, err := strconv.ParseFloat(getenv("LOOKUP_RATE", "0"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LOOKUP_RATE: %w", err)
	}
	if rate < 0 {
		return nil, fmt.Errorf("LOOKUP_RATE must be >= 0, got %v", rate)
	}
	cfg.LookupRate = rate

	level, err := log.ParseLevel(getenv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

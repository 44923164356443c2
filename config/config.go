// Package config reads the lcc settings from the environment, an optional .env file, and the
// catalog and rate-path files they point to.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/luizmugnaicomex-art/landedcost"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Report formats.
const (
	FormatMarkdown = "md"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// Formats lists the supported report formats.
var Formats = []string{FormatMarkdown, FormatHTML, FormatJSON}

type Config struct {
	RatesFile             string          // exchange-rate table, JSON
	RatePathsFile         string          // JSONPath mapping used by "lcc rates"
	CatalogFile           string          // warehouse schedules, replaces the built-in catalog
	DemurrageDailyRateUSD decimal.Decimal // reference demurrage charge per overdue day
	LogLevel              string
	ReportFormat          string
}

var (
	once     sync.Once
	instance *Config
	loadErr  error
)

// Load reads the configuration once. Values come from LCC_* environment variables, then from
// a .env file in the working directory if it exists, then from defaults.
func Load() (*Config, error) {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()
		instance, loadErr = read(viper.New())
	})
	return instance, loadErr
}

func read(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("LCC")
	v.SetDefault("RATES_FILE", "")
	v.SetDefault("RATE_PATHS_FILE", "")
	v.SetDefault("CATALOG_FILE", "")
	v.SetDefault("DEMURRAGE_DAILY_RATE_USD", landedcost.DefaultDemurrageDailyRateUSD.String())
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("REPORT_FORMAT", FormatMarkdown)

	// Read from environment variables
	v.AutomaticEnv()

	rate, err := decimal.NewFromString(strings.TrimSpace(v.GetString("DEMURRAGE_DAILY_RATE_USD")))
	if err != nil {
		return nil, fmt.Errorf("invalid LCC_DEMURRAGE_DAILY_RATE_USD: %w", err)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("invalid LCC_DEMURRAGE_DAILY_RATE_USD: %s is negative", rate)
	}
	format := strings.ToLower(v.GetString("REPORT_FORMAT"))
	if err := ValidateFormat(format); err != nil {
		return nil, fmt.Errorf("invalid LCC_REPORT_FORMAT: %w", err)
	}

	return &Config{
		RatesFile:             v.GetString("RATES_FILE"),
		RatePathsFile:         v.GetString("RATE_PATHS_FILE"),
		CatalogFile:           v.GetString("CATALOG_FILE"),
		DemurrageDailyRateUSD: rate,
		LogLevel:              v.GetString("LOG_LEVEL"),
		ReportFormat:          format,
	}, nil
}

// ValidateFormat checks that format is one of Formats.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown report format %q, want one of %s", format, strings.Join(Formats, ", "))
}

package config

import (
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Environment variables read by the exporter.
const (
	EnvAPIKey    = "BITVAVO_API_KEY"
	EnvAPISecret = "BITVAVO_API_SECRET"
	EnvRestURL   = "BITVAVO_REST_URL"
	EnvHoldingID = "PARQET_HOLDING_ID"
	EnvSymbols   = "CRYPTO_SYMBOLS"
	EnvOutput    = "PARQET_OUTPUT"
	EnvLogLevel  = "LOG_LEVEL"
)

// Notional modes for the trade amount column.
const (
	NotionalFloat = "float" // price × amount in float64
	NotionalExact = "exact" // price × amount in arbitrary-precision decimal
)

// Config is the root configuration for an export run.
type Config struct {
	Bitvavo BitvavoConfig `yaml:"bitvavo"`
	Parqet  ParqetConfig  `yaml:"parqet"`
	Export  ExportConfig  `yaml:"export"`
	Log     LogConfig     `yaml:"log"`
}

// BitvavoConfig holds exchange API settings.
type BitvavoConfig struct {
	RestURL          string        `yaml:"rest_url"`
	APIKey           string        `yaml:"api_key"`
	APISecret        string        `yaml:"api_secret"`
	AccessWindow     time.Duration `yaml:"access_window"`
	Timeout          time.Duration `yaml:"timeout"`
	TradesPageSize   int           `yaml:"trades_page_size"`
	DepositsPageSize int           `yaml:"deposits_page_size"`
}

// ParqetConfig identifies the destination in Parqet.
type ParqetConfig struct {
	HoldingID string `yaml:"holding_id"` // cash account receiving deposits
}

// ExportConfig controls what is exported and where.
type ExportConfig struct {
	Symbols       []string `yaml:"symbols"`
	QuoteCurrency string   `yaml:"quote_currency"`
	Output        string   `yaml:"output"`
	Notional      string   `yaml:"notional"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SlogLevel returns the configured level, falling back to info.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseSymbols splits a comma-separated symbol list, trimming whitespace and
// upper-casing each entry. Empty entries are dropped.
func ParseSymbols(list string) []string {
	return NormalizeSymbols(strings.Split(list, ","))
}

// NormalizeSymbols trims and upper-cases symbols, dropping empty ones.
func NormalizeSymbols(symbols []string) []string {
	upper := cases.Upper(language.Und)

	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, upper.String(s))
	}
	return out
}

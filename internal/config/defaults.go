package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultRestURL          = "https://api.bitvavo.com/v2"
	DefaultAccessWindow     = 10 * time.Second
	DefaultAPITimeout       = 30 * time.Second
	DefaultTradesPageSize   = 1000
	DefaultDepositsPageSize = 500
	DefaultSymbol           = "BTC"
	DefaultQuoteCurrency    = "EUR"
	DefaultOutput           = "parqet.csv"
	DefaultNotional         = NotionalFloat
	DefaultLogLevel         = "info"
)

func (c *Config) applyDefaults() {
	// Bitvavo defaults
	if c.Bitvavo.RestURL == "" {
		c.Bitvavo.RestURL = DefaultRestURL
	}
	if c.Bitvavo.AccessWindow == 0 {
		c.Bitvavo.AccessWindow = DefaultAccessWindow
	}
	if c.Bitvavo.Timeout == 0 {
		c.Bitvavo.Timeout = DefaultAPITimeout
	}
	if c.Bitvavo.TradesPageSize == 0 {
		c.Bitvavo.TradesPageSize = DefaultTradesPageSize
	}
	if c.Bitvavo.DepositsPageSize == 0 {
		c.Bitvavo.DepositsPageSize = DefaultDepositsPageSize
	}

	// Export defaults
	c.Export.Symbols = NormalizeSymbols(c.Export.Symbols)
	if len(c.Export.Symbols) == 0 {
		c.Export.Symbols = []string{DefaultSymbol}
	}
	if c.Export.QuoteCurrency == "" {
		c.Export.QuoteCurrency = DefaultQuoteCurrency
	}
	if quote := NormalizeSymbols([]string{c.Export.QuoteCurrency}); len(quote) == 1 {
		c.Export.QuoteCurrency = quote[0]
	}
	if c.Export.Output == "" {
		c.Export.Output = DefaultOutput
	}
	if c.Export.Notional == "" {
		c.Export.Notional = DefaultNotional
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

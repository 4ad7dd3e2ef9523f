package config

import (
	"errors"
	"fmt"
	"strings"
)

// MissingError reports required settings that are not set, with a hint on how
// to provide them.
type MissingError struct {
	Vars []string
	Hint string
}

func (e *MissingError) Error() string {
	return strings.Join(e.Vars, " or ") + " not set"
}

const credentialsHint = `Create a .env file with your API key and secret, for example:
  BITVAVO_API_KEY=your_api_key
  BITVAVO_API_SECRET=your_api_secret`

const holdingHint = `Add your Parqet cash account holding ID to the .env file, for example:
  PARQET_HOLDING_ID=632753972193856f22ee6618`

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	var missing []string
	if c.Bitvavo.APIKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	if c.Bitvavo.APISecret == "" {
		missing = append(missing, EnvAPISecret)
	}
	if len(missing) > 0 {
		return &MissingError{Vars: missing, Hint: credentialsHint}
	}

	if c.Parqet.HoldingID == "" {
		return &MissingError{Vars: []string{EnvHoldingID}, Hint: holdingHint}
	}

	if c.Bitvavo.RestURL == "" {
		return errors.New("bitvavo.rest_url is required")
	}
	if c.Bitvavo.TradesPageSize < 1 || c.Bitvavo.TradesPageSize > DefaultTradesPageSize {
		return fmt.Errorf("bitvavo.trades_page_size must be between 1 and %d, got %d", DefaultTradesPageSize, c.Bitvavo.TradesPageSize)
	}
	if c.Bitvavo.DepositsPageSize < 1 || c.Bitvavo.DepositsPageSize > DefaultDepositsPageSize {
		return fmt.Errorf("bitvavo.deposits_page_size must be between 1 and %d, got %d", DefaultDepositsPageSize, c.Bitvavo.DepositsPageSize)
	}

	if len(c.Export.Symbols) == 0 {
		return errors.New("export.symbols must not be empty")
	}
	if c.Export.QuoteCurrency == "" {
		return errors.New("export.quote_currency is required")
	}
	if c.Export.Output == "" {
		return errors.New("export.output is required")
	}
	switch c.Export.Notional {
	case NotionalFloat, NotionalExact:
	default:
		return fmt.Errorf("export.notional must be %q or %q, got %q", NotionalFloat, NotionalExact, c.Export.Notional)
	}

	return nil
}

package activity

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/njuettner/bitvavo-parqet/internal/model"
)

// datetimeLayout renders UTC times as e.g. 2023-11-14T22:13:20.000Z.
const datetimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Notional selects how a trade's amount column (price × quantity) is computed.
type Notional int

const (
	// NotionalFloat multiplies in float64, matching what spreadsheet tools do.
	NotionalFloat Notional = iota
	// NotionalExact multiplies the decimal strings without rounding.
	NotionalExact
)

// Normalizer converts exchange records into Parqet rows.
type Normalizer struct {
	HoldingID string // Parqet cash account for deposits
	Notional  Notional
}

// FromTrade maps a trade to a Buy or Sell row.
func (n Normalizer) FromTrade(t model.Trade) (Row, error) {
	base, quote, ok := strings.Cut(t.Market, "-")
	if !ok || base == "" || quote == "" {
		return Row{}, fmt.Errorf("trade %s: malformed market %q", t.ID, t.Market)
	}

	amount, err := n.notional(t.Price, t.Amount)
	if err != nil {
		return Row{}, fmt.Errorf("trade %s: %w", t.ID, err)
	}

	typ := TypeSell
	if t.Side == model.SideBuy {
		typ = TypeBuy
	}

	return Row{
		Datetime:   FormatDatetime(t.Timestamp),
		Type:       typ,
		Identifier: base,
		Shares:     FormatDecimal(t.Amount),
		Price:      FormatDecimal(t.Price),
		Amount:     FormatDecimal(amount),
		Fee:        FormatDecimal(t.Fee),
		Tax:        "0",
		Currency:   quote,
		AssetType:  AssetTypeCrypto,
	}, nil
}

// FromDeposit maps a deposit to a TransferIn row into the configured holding.
func (n Normalizer) FromDeposit(d model.Deposit) Row {
	fee := d.Fee
	if fee == "" {
		fee = "0"
	}

	return Row{
		Datetime: FormatDatetime(d.Timestamp),
		Type:     TypeTransferIn,
		Amount:   FormatDecimal(d.Amount),
		Fee:      FormatDecimal(fee),
		Tax:      "0",
		Holding:  n.HoldingID,
	}
}

// notional returns price × amount as a plain decimal string with a dot separator.
func (n Normalizer) notional(price, amount string) (string, error) {
	if n.Notional == NotionalExact {
		p, err := decimal.NewFromString(price)
		if err != nil {
			return "", fmt.Errorf("parse price %q: %w", price, err)
		}
		a, err := decimal.NewFromString(amount)
		if err != nil {
			return "", fmt.Errorf("parse amount %q: %w", amount, err)
		}
		return p.Mul(a).String(), nil
	}

	p, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return "", fmt.Errorf("parse price %q: %w", price, err)
	}
	a, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return "", fmt.Errorf("parse amount %q: %w", amount, err)
	}
	return strconv.FormatFloat(p*a, 'f', -1, 64), nil
}

// FormatDatetime renders a millisecond Unix timestamp as ISO 8601 UTC with
// millisecond precision and a "Z" suffix.
func FormatDatetime(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(datetimeLayout)
}

// FormatDecimal swaps the decimal point for a comma. Numbers in exponent
// notation are first rewritten in plain notation.
func FormatDecimal(s string) string {
	if strings.ContainsAny(s, "eE") {
		if d, err := decimal.NewFromString(s); err == nil {
			s = d.String()
		}
	}
	return strings.ReplaceAll(s, ".", ",")
}

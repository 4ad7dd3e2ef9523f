package model

import (
	"strings"

	"github.com/google/uuid"
)

// Side is the direction of a trade from the account's point of view.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// ParseSide maps an exchange side string to a Side. Anything that is not
// "buy" is treated as a sell.
func ParseSide(s string) Side {
	if strings.EqualFold(strings.TrimSpace(s), string(SideBuy)) {
		return SideBuy
	}
	return SideSell
}

// Trade is a single fill of an account order on a BASE-QUOTE market.
type Trade struct {
	ID          uuid.UUID // Trade ID (uuid.Nil if the exchange sent something unparseable)
	OrderID     uuid.UUID // Order the fill belongs to
	Market      string    // e.g. "BTC-EUR"
	Timestamp   int64     // Execution time (ms since epoch)
	Price       string    // Price per unit in quote currency
	Amount      string    // Quantity of the base asset
	Fee         string    // Fee paid
	FeeCurrency string    // Currency the fee was charged in
	Side        Side
	Taker       bool
}

// Deposit is an incoming transfer to the exchange account.
type Deposit struct {
	Symbol    string // Asset symbol, e.g. "EUR"
	Timestamp int64  // Booking time (ms since epoch)
	Amount    string // Deposited amount
	Fee       string // Fee charged, "0" when the exchange omits it
	Status    string
	TxID      string
}

package api

import (
	"github.com/google/uuid"

	"github.com/njuettner/bitvavo-parqet/internal/model"
)

// parseID parses a Bitvavo UUID. Returns uuid.Nil for empty or invalid input.
func parseID(s string) uuid.UUID {
	if s == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// ToModel converts an APITrade to model.Trade.
func (t *APITrade) ToModel() model.Trade {
	return model.Trade{
		ID:          parseID(t.ID),
		OrderID:     parseID(t.OrderID),
		Market:      t.Market,
		Timestamp:   t.Timestamp,
		Price:       t.Price,
		Amount:      t.Amount,
		Fee:         t.Fee,
		FeeCurrency: t.FeeCurrency,
		Side:        model.ParseSide(t.Side),
		Taker:       t.Taker,
	}
}

// ToModel converts an APIDeposit to model.Deposit. A missing fee becomes "0".
func (d *APIDeposit) ToModel() model.Deposit {
	fee := d.Fee
	if fee == "" {
		fee = "0"
	}
	return model.Deposit{
		Symbol:    d.Symbol,
		Timestamp: d.Timestamp,
		Amount:    d.Amount,
		Fee:       fee,
		Status:    d.Status,
		TxID:      d.TxID,
	}
}

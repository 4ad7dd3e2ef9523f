package api

// APITrade is an account trade from GET /trades.
type APITrade struct {
	ID            string `json:"id"`
	OrderID       string `json:"orderId"`
	ClientOrderID string `json:"clientOrderId"`
	Timestamp     int64  `json:"timestamp"` // ms since epoch
	Market        string `json:"market"`
	Side          string `json:"side"`
	Amount        string `json:"amount"`
	Price         string `json:"price"`
	Taker         bool   `json:"taker"`
	Fee           string `json:"fee"`
	FeeCurrency   string `json:"feeCurrency"`
	Settled       bool   `json:"settled"`
}

// APIDeposit is an entry from GET /depositHistory.
type APIDeposit struct {
	Timestamp int64  `json:"timestamp"` // ms since epoch
	Symbol    string `json:"symbol"`
	Amount    string `json:"amount"`
	Fee       string `json:"fee,omitempty"`
	Status    string `json:"status"`
	Address   string `json:"address,omitempty"`
	PaymentID string `json:"paymentId,omitempty"`
	TxID      string `json:"txId,omitempty"`
}

// GetTradesOptions configures a GetTrades request.
type GetTradesOptions struct {
	Market      string // required, e.g. "BTC-EUR"
	Limit       int
	Start       int64 // ms since epoch
	End         int64 // ms since epoch
	TradeIDFrom string
	TradeIDTo   string
}

// GetDepositHistoryOptions configures a GetDepositHistory request.
type GetDepositHistoryOptions struct {
	Symbol string // empty for all assets
	Limit  int
	Start  int64 // ms since epoch
	End    int64 // ms since epoch
}

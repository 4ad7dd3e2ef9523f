package activity

import (
	"slices"
	"strings"
)

// Activity types understood by Parqet.
const (
	TypeBuy        = "Buy"
	TypeSell       = "Sell"
	TypeTransferIn = "TransferIn"
)

// AssetTypeCrypto is the Parqet asset type for every traded asset.
const AssetTypeCrypto = "Crypto"

// Column names of the Parqet CSV, in file order.
const (
	ColDatetime   = "datetime"
	ColType       = "type"
	ColIdentifier = "identifier"
	ColShares     = "shares"
	ColPrice      = "price"
	ColAmount     = "amount"
	ColFee        = "fee"
	ColTax        = "tax"
	ColCurrency   = "currency"
	ColAssetType  = "assetType"
	ColHolding    = "holding"
)

// Columns is the fixed header of the export file.
var Columns = []string{
	ColDatetime,
	ColType,
	ColIdentifier,
	ColShares,
	ColPrice,
	ColAmount,
	ColFee,
	ColTax,
	ColCurrency,
	ColAssetType,
	ColHolding,
}

// Row is one Parqet activity. Fields that do not apply to the row's type are empty.
type Row struct {
	Datetime   string
	Type       string
	Identifier string // trades only
	Shares     string // trades only
	Price      string // trades only
	Amount     string
	Fee        string
	Tax        string
	Currency   string // trades only
	AssetType  string // trades only
	Holding    string // deposits only
}

// Field returns the value of the named column, or "" for unknown names.
func (r Row) Field(name string) string {
	switch name {
	case ColDatetime:
		return r.Datetime
	case ColType:
		return r.Type
	case ColIdentifier:
		return r.Identifier
	case ColShares:
		return r.Shares
	case ColPrice:
		return r.Price
	case ColAmount:
		return r.Amount
	case ColFee:
		return r.Fee
	case ColTax:
		return r.Tax
	case ColCurrency:
		return r.Currency
	case ColAssetType:
		return r.AssetType
	case ColHolding:
		return r.Holding
	}
	return ""
}

// Sort orders rows by datetime, oldest first. Rows with equal datetimes keep
// their relative order.
func Sort(rows []Row) {
	slices.SortStableFunc(rows, func(a, b Row) int {
		return strings.Compare(a.Datetime, b.Datetime)
	})
}

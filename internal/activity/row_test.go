package activity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumns(t *testing.T) {
	require.Equal(t, []string{
		"datetime", "type", "identifier", "shares", "price", "amount",
		"fee", "tax", "currency", "assetType", "holding",
	}, Columns)
}

func TestRow_Field(t *testing.T) {
	row := Row{
		Datetime:   "d",
		Type:       "ty",
		Identifier: "i",
		Shares:     "s",
		Price:      "p",
		Amount:     "a",
		Fee:        "f",
		Tax:        "tx",
		Currency:   "c",
		AssetType:  "at",
		Holding:    "h",
	}

	var got []string
	for _, col := range Columns {
		got = append(got, row.Field(col))
	}
	require.Equal(t, []string{"d", "ty", "i", "s", "p", "a", "f", "tx", "c", "at", "h"}, got)
	require.Empty(t, row.Field("unknown"))
}

func TestSort(t *testing.T) {
	rows := []Row{
		{Datetime: "2024-01-02T00:00:00.000Z", Type: TypeBuy},
		{Datetime: "2024-01-01T00:00:00.000Z", Type: TypeTransferIn},
		{Datetime: "2023-12-31T23:59:59.999Z", Type: TypeSell},
	}

	Sort(rows)

	require.Equal(t, "2023-12-31T23:59:59.999Z", rows[0].Datetime)
	require.Equal(t, "2024-01-01T00:00:00.000Z", rows[1].Datetime)
	require.Equal(t, "2024-01-02T00:00:00.000Z", rows[2].Datetime)
}

func TestSort_StableTies(t *testing.T) {
	rows := []Row{
		{Datetime: "2024-01-01T00:00:00.000Z", Identifier: "first"},
		{Datetime: "2023-01-01T00:00:00.000Z", Identifier: "early"},
		{Datetime: "2024-01-01T00:00:00.000Z", Identifier: "second"},
	}

	Sort(rows)

	require.Equal(t, []string{"early", "first", "second"},
		[]string{rows[0].Identifier, rows[1].Identifier, rows[2].Identifier})
}

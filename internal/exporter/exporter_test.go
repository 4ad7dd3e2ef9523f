package exporter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/njuettner/bitvavo-parqet/internal/activity"
	"github.com/njuettner/bitvavo-parqet/internal/api"
)

// fakeExchange serves canned history per market.
type fakeExchange struct {
	trades     map[string][]api.APITrade
	tradeErrs  map[string]error
	deposits   []api.APIDeposit
	depositErr error

	markets []string // markets requested, in order
}

func (f *fakeExchange) GetAllTrades(ctx context.Context, market string) ([]api.APITrade, error) {
	f.markets = append(f.markets, market)
	if err := f.tradeErrs[market]; err != nil {
		return nil, err
	}
	return f.trades[market], nil
}

func (f *fakeExchange) GetAllDeposits(ctx context.Context) ([]api.APIDeposit, error) {
	if f.depositErr != nil {
		return nil, f.depositErr
	}
	return f.deposits, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T, symbols ...string) Config {
	t.Helper()
	return Config{
		Symbols:       symbols,
		QuoteCurrency: "EUR",
		HoldingID:     "h1",
		Output:        filepath.Join(t.TempDir(), "parqet.csv"),
		Notional:      activity.NotionalFloat,
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\r\n"), "\r\n")
}

const header = `"datetime";"type";"identifier";"shares";"price";"amount";"fee";"tax";"currency";"assetType";"holding"`

func TestRun_TradesAndDeposits(t *testing.T) {
	ex := &fakeExchange{
		trades: map[string][]api.APITrade{
			"BTC-EUR": {{
				ID:        "11111111-1111-1111-1111-111111111111",
				Timestamp: 1700000000000,
				Market:    "BTC-EUR",
				Side:      "buy",
				Amount:    "0.25",
				Price:     "30000.5",
				Fee:       "1.5",
			}},
		},
		deposits: []api.APIDeposit{
			{Timestamp: 1600000000000, Symbol: "EUR", Amount: "100.00", Status: "completed"},
			{Timestamp: 1650000000000, Symbol: "USD", Amount: "50", Fee: "1"},
		},
	}
	cfg := testConfig(t, "BTC")

	res, err := New(cfg, ex, discardLogger()).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, res.Trades)
	require.Equal(t, 1, res.Deposits)
	require.Equal(t, 2, res.Rows)
	require.Equal(t, cfg.Output, res.Output)
	require.Equal(t, []string{"BTC-EUR"}, ex.markets)

	require.Equal(t, []string{
		header,
		`"2020-09-13T12:26:40.000Z";"TransferIn";"";"";"";"100,00";"0";"0";"";"";"h1"`,
		`"2023-11-14T22:13:20.000Z";"Buy";"BTC";"0,25";"30000,5";"7500,125";"1,5";"0";"EUR";"Crypto";""`,
	}, readLines(t, cfg.Output))
}

func TestRun_MarketsInSymbolOrder(t *testing.T) {
	ex := &fakeExchange{
		deposits: []api.APIDeposit{{Timestamp: 1, Symbol: "EUR", Amount: "1"}},
	}

	_, err := New(testConfig(t, "ETH", "BTC", "ADA"), ex, discardLogger()).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"ETH-EUR", "BTC-EUR", "ADA-EUR"}, ex.markets)
}

func TestRun_SymbolFailureIsSkipped(t *testing.T) {
	ex := &fakeExchange{
		trades: map[string][]api.APITrade{
			"BTC-EUR": {{ID: "a", Timestamp: 2000, Market: "BTC-EUR", Side: "sell", Amount: "1", Price: "2", Fee: "0"}},
		},
		tradeErrs: map[string]error{
			"ETH-EUR": &api.APIError{StatusCode: 400, ErrorCode: 205, Message: "invalid market"},
		},
	}
	cfg := testConfig(t, "ETH", "BTC")

	res, err := New(cfg, ex, discardLogger()).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"ETH"}, res.SkippedSymbols)
	require.Equal(t, 1, res.Rows)

	lines := readLines(t, cfg.Output)
	require.Len(t, lines, 2)
	require.Contains(t, lines[1], `"Sell";"BTC"`)
}

func TestRun_DepositFailureCountsAsNone(t *testing.T) {
	ex := &fakeExchange{
		trades: map[string][]api.APITrade{
			"BTC-EUR": {{ID: "a", Timestamp: 2000, Market: "BTC-EUR", Side: "buy", Amount: "1", Price: "2", Fee: "0"}},
		},
		depositErr: errors.New("connection refused"),
	}

	res, err := New(testConfig(t, "BTC"), ex, discardLogger()).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, res.Deposits)
	require.Equal(t, 1, res.Rows)
}

func TestRun_NothingToExport(t *testing.T) {
	ex := &fakeExchange{
		deposits: []api.APIDeposit{{Timestamp: 1, Symbol: "BTC", Amount: "0.1"}},
	}
	cfg := testConfig(t, "BTC")

	res, err := New(cfg, ex, discardLogger()).Run(context.Background())
	require.ErrorIs(t, err, ErrNothingToExport)
	require.Zero(t, res.Rows)

	_, statErr := os.Stat(cfg.Output)
	require.True(t, os.IsNotExist(statErr), "output file must not be created")
}

func TestRun_SortsAcrossSources(t *testing.T) {
	ex := &fakeExchange{
		trades: map[string][]api.APITrade{
			"BTC-EUR": {
				{ID: "t3", Timestamp: 3000, Market: "BTC-EUR", Side: "buy", Amount: "1", Price: "1", Fee: "0"},
				{ID: "t1", Timestamp: 1000, Market: "BTC-EUR", Side: "buy", Amount: "1", Price: "1", Fee: "0"},
			},
			"ETH-EUR": {
				{ID: "t2", Timestamp: 2000, Market: "ETH-EUR", Side: "sell", Amount: "1", Price: "1", Fee: "0"},
			},
		},
		deposits: []api.APIDeposit{
			{Timestamp: 2000, Symbol: "EUR", Amount: "5"},
			{Timestamp: 500, Symbol: "EUR", Amount: "6"},
		},
	}
	cfg := testConfig(t, "BTC", "ETH")

	_, err := New(cfg, ex, discardLogger()).Run(context.Background())
	require.NoError(t, err)

	lines := readLines(t, cfg.Output)[1:]
	require.Len(t, lines, 5)

	var types []string
	for _, l := range lines {
		types = append(types, strings.Split(l, ";")[1])
	}
	// the trade at 2000 precedes the deposit at 2000
	require.Equal(t, []string{`"TransferIn"`, `"Buy"`, `"Sell"`, `"TransferIn"`, `"Buy"`}, types)
}

func TestRun_MalformedTradeIsSkipped(t *testing.T) {
	ex := &fakeExchange{
		trades: map[string][]api.APITrade{
			"BTC-EUR": {
				{ID: "bad", Timestamp: 1000, Market: "BTCEUR", Side: "buy", Amount: "1", Price: "1", Fee: "0"},
				{ID: "nan", Timestamp: 1000, Market: "BTC-EUR", Side: "buy", Amount: "x", Price: "1", Fee: "0"},
				{ID: "ok", Timestamp: 2000, Market: "BTC-EUR", Side: "buy", Amount: "1", Price: "1", Fee: "0"},
			},
		},
	}

	res, err := New(testConfig(t, "BTC"), ex, discardLogger()).Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, res.Trades)
	require.Equal(t, 2, res.SkippedRecords)
	require.Equal(t, 1, res.Rows)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ex := &fakeExchange{
		tradeErrs: map[string]error{"BTC-EUR": context.Canceled},
	}
	cfg := testConfig(t, "BTC")

	_, err := New(cfg, ex, discardLogger()).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(cfg.Output)
	require.True(t, os.IsNotExist(statErr))
}

func TestRun_WriteFailure(t *testing.T) {
	ex := &fakeExchange{
		deposits: []api.APIDeposit{{Timestamp: 1, Symbol: "EUR", Amount: "1"}},
	}
	cfg := testConfig(t, "BTC")
	cfg.Output = filepath.Join(t.TempDir(), "missing", "parqet.csv")

	_, err := New(cfg, ex, discardLogger()).Run(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNothingToExport)
}

func TestMarket(t *testing.T) {
	e := New(Config{QuoteCurrency: "EUR"}, &fakeExchange{}, nil)
	require.Equal(t, "BTC-EUR", e.Market("BTC"))
}

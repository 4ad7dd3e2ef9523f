package exporter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/njuettner/bitvavo-parqet/internal/activity"
	"github.com/njuettner/bitvavo-parqet/internal/api"
	"github.com/njuettner/bitvavo-parqet/internal/model"
	"github.com/njuettner/bitvavo-parqet/internal/writer"
)

// ErrNothingToExport is returned when neither trades nor deposits were found.
var ErrNothingToExport = errors.New("no trades or deposits to export")

// Exchange provides the account history to export.
type Exchange interface {
	GetAllTrades(ctx context.Context, market string) ([]api.APITrade, error)
	GetAllDeposits(ctx context.Context) ([]api.APIDeposit, error)
}

// Config holds exporter configuration.
type Config struct {
	Symbols       []string // base assets, e.g. BTC, ETH
	QuoteCurrency string   // e.g. EUR
	HoldingID     string   // Parqet cash account for deposits
	Output        string   // CSV file path
	Notional      activity.Notional
}

// Result summarizes a run.
type Result struct {
	Trades         int      // trades fetched
	Deposits       int      // quote-currency deposits fetched
	Rows           int      // rows written
	SkippedSymbols []string // symbols whose trades could not be fetched
	SkippedRecords int      // records that could not be mapped
	Output         string
}

// Exporter fetches account history and writes it as a Parqet CSV.
type Exporter struct {
	cfg        Config
	exchange   Exchange
	normalizer activity.Normalizer
	logger     *slog.Logger
}

// New creates a new Exporter.
func New(cfg Config, exchange Exchange, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		cfg:      cfg,
		exchange: exchange,
		normalizer: activity.Normalizer{
			HoldingID: cfg.HoldingID,
			Notional:  cfg.Notional,
		},
		logger: logger,
	}
}

// Run performs the export. It returns ErrNothingToExport, without creating
// the output file, when there is nothing to write.
func (e *Exporter) Run(ctx context.Context) (Result, error) {
	var res Result

	trades, err := e.fetchTrades(ctx, &res)
	if err != nil {
		return res, err
	}

	deposits, err := e.fetchDeposits(ctx)
	if err != nil {
		return res, err
	}
	res.Deposits = len(deposits)

	rows := e.buildRows(trades, deposits, &res)
	if len(rows) == 0 {
		e.logger.Info("no trades or deposits to export")
		return res, ErrNothingToExport
	}

	n, err := writer.WriteFile(e.cfg.Output, activity.Columns, rows)
	if err != nil {
		return res, fmt.Errorf("write export: %w", err)
	}
	res.Rows = n
	res.Output = e.cfg.Output

	e.logger.Info("exported activities",
		"count", n,
		"file", e.cfg.Output,
	)

	return res, nil
}

// Market returns the trading pair for a base symbol, e.g. "BTC" -> "BTC-EUR".
func (e *Exporter) Market(symbol string) string {
	return symbol + "-" + e.cfg.QuoteCurrency
}

// fetchTrades fetches the trades of every configured symbol in order.
// A failing symbol is logged and skipped.
func (e *Exporter) fetchTrades(ctx context.Context, res *Result) ([]model.Trade, error) {
	e.logger.Info("fetching trades",
		"symbols", strings.Join(e.cfg.Symbols, ", "),
	)

	var trades []model.Trade
	for _, symbol := range e.cfg.Symbols {
		market := e.Market(symbol)
		e.logger.Info("fetching trades for market", "market", market)

		page, err := e.exchange.GetAllTrades(ctx, market)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			e.logger.Error("could not fetch trades",
				"market", market,
				"error", err,
			)
			res.SkippedSymbols = append(res.SkippedSymbols, symbol)
			continue
		}

		for i := range page {
			trades = append(trades, page[i].ToModel())
		}
	}

	res.Trades = len(trades)
	e.logger.Info("found trades", "total", len(trades))

	return trades, nil
}

// fetchDeposits fetches the deposit history of all assets and keeps the
// quote-currency deposits. A failed request counts as no deposits.
func (e *Exporter) fetchDeposits(ctx context.Context) ([]model.Deposit, error) {
	e.logger.Info("fetching deposit history", "currency", e.cfg.QuoteCurrency)

	all, err := e.exchange.GetAllDeposits(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		e.logger.Error("could not fetch deposits", "error", err)
		all = nil
	}

	deposits := make([]model.Deposit, 0, len(all))
	for i := range all {
		if all[i].Symbol != e.cfg.QuoteCurrency {
			continue
		}
		deposits = append(deposits, all[i].ToModel())
	}

	e.logger.Info("found deposits",
		"currency", e.cfg.QuoteCurrency,
		"total", len(deposits),
	)

	return deposits, nil
}

// buildRows maps trades then deposits to rows and sorts them by datetime.
func (e *Exporter) buildRows(trades []model.Trade, deposits []model.Deposit, res *Result) []activity.Row {
	rows := make([]activity.Row, 0, len(trades)+len(deposits))

	for _, t := range trades {
		row, err := e.normalizer.FromTrade(t)
		if err != nil {
			e.logger.Warn("skipping trade", "error", err)
			res.SkippedRecords++
			continue
		}
		rows = append(rows, row)
	}

	for _, d := range deposits {
		rows = append(rows, e.normalizer.FromDeposit(d))
	}

	activity.Sort(rows)
	return rows
}

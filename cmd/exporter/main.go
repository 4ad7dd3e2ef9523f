package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/njuettner/bitvavo-parqet/internal/activity"
	"github.com/njuettner/bitvavo-parqet/internal/api"
	"github.com/njuettner/bitvavo-parqet/internal/auth"
	"github.com/njuettner/bitvavo-parqet/internal/config"
	"github.com/njuettner/bitvavo-parqet/internal/exporter"
	"github.com/njuettner/bitvavo-parqet/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to optional YAML config file")
	envFile := flag.String("env-file", ".env", "path to .env file")
	output := flag.String("out", "", "output CSV file (overrides config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Set up structured logging; the level is finalized once config is loaded
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Info("starting exporter",
		"version", version.Version,
		"commit", version.Commit,
	)

	if err := config.LoadDotEnv(*envFile); err != nil {
		logger.Error("failed to load env file", "error", err)
		os.Exit(1)
	}

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		var missing *config.MissingError
		if errors.As(err, &missing) {
			fmt.Println(missing.Hint)
		}
		os.Exit(1)
	}
	if *output != "" {
		cfg.Export.Output = *output
	}

	level.Set(cfg.Log.SlogLevel())
	if *debug {
		level.Set(slog.LevelDebug)
	}

	logger.Info("configuration loaded",
		"api_url", cfg.Bitvavo.RestURL,
		"symbols", cfg.Export.Symbols,
		"quote", cfg.Export.QuoteCurrency,
		"output", cfg.Export.Output,
		"notional", cfg.Export.Notional,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	creds, err := auth.NewCredentials(cfg.Bitvavo.APIKey, cfg.Bitvavo.APISecret)
	if err != nil {
		logger.Error("failed to create credentials", "error", err)
		os.Exit(1)
	}

	client := api.NewClient(
		cfg.Bitvavo.RestURL,
		creds,
		api.WithLogger(logger),
		api.WithTimeout(cfg.Bitvavo.Timeout),
		api.WithAccessWindow(cfg.Bitvavo.AccessWindow),
		api.WithPageSizes(cfg.Bitvavo.TradesPageSize, cfg.Bitvavo.DepositsPageSize),
	)

	exp := exporter.New(exporter.Config{
		Symbols:       cfg.Export.Symbols,
		QuoteCurrency: cfg.Export.QuoteCurrency,
		HoldingID:     cfg.Parqet.HoldingID,
		Output:        cfg.Export.Output,
		Notional:      notionalMode(cfg.Export.Notional),
	}, client, logger)

	res, err := exp.Run(ctx)
	switch {
	case errors.Is(err, exporter.ErrNothingToExport):
		return
	case err != nil:
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}

	logger.Info("export complete",
		"trades", res.Trades,
		"deposits", res.Deposits,
		"rows", res.Rows,
		"skipped_symbols", len(res.SkippedSymbols),
		"skipped_records", res.SkippedRecords,
		"file", res.Output,
	)
}

func notionalMode(mode string) activity.Notional {
	if mode == config.NotionalExact {
		return activity.NotionalExact
	}
	return activity.NotionalFloat
}

package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// GetTrades fetches a page of account trades for one market, newest first.
func (c *Client) GetTrades(ctx context.Context, opts GetTradesOptions) ([]APITrade, error) {
	if opts.Market == "" {
		return nil, errors.New("get trades: market is required")
	}

	query := url.Values{}
	query.Set("market", opts.Market)

	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Start > 0 {
		query.Set("start", strconv.FormatInt(opts.Start, 10))
	}
	if opts.End > 0 {
		query.Set("end", strconv.FormatInt(opts.End, 10))
	}
	if opts.TradeIDFrom != "" {
		query.Set("tradeIdFrom", opts.TradeIDFrom)
	}
	if opts.TradeIDTo != "" {
		query.Set("tradeIdTo", opts.TradeIDTo)
	}

	var trades []APITrade
	if err := c.get(ctx, "/trades", query, &trades); err != nil {
		return nil, fmt.Errorf("get trades %s: %w", opts.Market, err)
	}

	return trades, nil
}

// GetAllTrades fetches the complete trade history of a market by paging
// backwards from the newest trade. Trades are returned in API order.
func (c *Client) GetAllTrades(ctx context.Context, market string) ([]APITrade, error) {
	var allTrades []APITrade
	opts := GetTradesOptions{Market: market, Limit: c.tradesPageSize}

	for {
		page, err := c.GetTrades(ctx, opts)
		if err != nil {
			return nil, err
		}
		fetched := len(page)

		// tradeIdTo is inclusive on some API versions; drop the boundary trade.
		if opts.TradeIDTo != "" {
			page = dropTrade(page, opts.TradeIDTo)
		}

		allTrades = append(allTrades, page...)

		c.logger.Debug("fetched trades page",
			"market", market,
			"count", len(page),
			"total", len(allTrades),
		)

		if fetched < opts.Limit || len(page) == 0 {
			break
		}
		opts.TradeIDTo = page[len(page)-1].ID
	}

	return allTrades, nil
}

func dropTrade(trades []APITrade, id string) []APITrade {
	out := trades[:0]
	for _, t := range trades {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

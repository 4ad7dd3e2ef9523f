package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetDepositHistory fetches a page of deposits, newest first.
func (c *Client) GetDepositHistory(ctx context.Context, opts GetDepositHistoryOptions) ([]APIDeposit, error) {
	query := url.Values{}

	if opts.Symbol != "" {
		query.Set("symbol", opts.Symbol)
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Start > 0 {
		query.Set("start", strconv.FormatInt(opts.Start, 10))
	}
	if opts.End > 0 {
		query.Set("end", strconv.FormatInt(opts.End, 10))
	}

	var deposits []APIDeposit
	if err := c.get(ctx, "/depositHistory", query, &deposits); err != nil {
		return nil, fmt.Errorf("get deposit history: %w", err)
	}

	return deposits, nil
}

// GetAllDeposits fetches the complete deposit history for all assets by
// paging backwards in time. Deposits are returned in API order.
func (c *Client) GetAllDeposits(ctx context.Context) ([]APIDeposit, error) {
	var allDeposits []APIDeposit
	opts := GetDepositHistoryOptions{Limit: c.depositsPageSize}

	for {
		page, err := c.GetDepositHistory(ctx, opts)
		if err != nil {
			return nil, err
		}

		allDeposits = append(allDeposits, page...)

		c.logger.Debug("fetched deposits page",
			"count", len(page),
			"total", len(allDeposits),
		)

		if len(page) < opts.Limit {
			break
		}

		oldest := page[0].Timestamp
		for _, d := range page[1:] {
			if d.Timestamp < oldest {
				oldest = d.Timestamp
			}
		}
		if oldest <= 1 {
			break
		}
		opts.End = oldest - 1
	}

	return allDeposits, nil
}

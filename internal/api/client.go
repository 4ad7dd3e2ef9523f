package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/njuettner/bitvavo-parqet/internal/auth"
)

// Page size limits enforced by Bitvavo.
const (
	MaxTradesPageSize   = 1000
	MaxDepositsPageSize = 500
)

// Client provides access to the Bitvavo REST API.
type Client struct {
	baseURL    string
	creds      *auth.Credentials
	httpClient *http.Client
	logger     *slog.Logger

	tradesPageSize   int
	depositsPageSize int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client. creds may be nil for unsigned requests.
func NewClient(baseURL string, creds *auth.Credentials, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		creds:   creds,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:           slog.Default(),
		tradesPageSize:   MaxTradesPageSize,
		depositsPageSize: MaxDepositsPageSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithAccessWindow sets how long a signed request stays valid.
func WithAccessWindow(d time.Duration) ClientOption {
	return func(c *Client) {
		if c.creds != nil {
			c.creds.Window = d
		}
	}
}

// WithPageSizes sets the page sizes used by GetAllTrades and GetAllDeposits.
// Values outside (0, max] are clamped to the exchange maximum.
func WithPageSizes(trades, deposits int) ClientOption {
	return func(c *Client) {
		c.tradesPageSize = clampPageSize(trades, MaxTradesPageSize)
		c.depositsPageSize = clampPageSize(deposits, MaxDepositsPageSize)
	}
}

func clampPageSize(n, max int) int {
	if n <= 0 || n > max {
		return max
	}
	return n
}

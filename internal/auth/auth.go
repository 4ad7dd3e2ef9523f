// Package auth provides Bitvavo API authentication using HMAC-SHA256 signatures.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"
)

// DefaultAccessWindow is how long Bitvavo accepts a signed request after its timestamp.
const DefaultAccessWindow = 10 * time.Second

// Header names expected by the Bitvavo REST API.
const (
	HeaderAccessKey       = "Bitvavo-Access-Key"
	HeaderAccessSignature = "Bitvavo-Access-Signature"
	HeaderAccessTimestamp = "Bitvavo-Access-Timestamp"
	HeaderAccessWindow    = "Bitvavo-Access-Window"
)

// Credentials holds the API key and secret for signing requests.
type Credentials struct {
	APIKey string
	Secret string
	Window time.Duration

	now func() time.Time
}

// NewCredentials validates and returns credentials with the default access window.
func NewCredentials(apiKey, secret string) (*Credentials, error) {
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}
	if secret == "" {
		return nil, errors.New("API secret is required")
	}

	return &Credentials{
		APIKey: apiKey,
		Secret: secret,
		Window: DefaultAccessWindow,
		now:    time.Now,
	}, nil
}

// SignRequest generates authentication headers for a Bitvavo API request.
// requestURI is the path as sent on the wire including the /v2 prefix and
// query string, e.g. "/v2/trades?market=BTC-EUR".
func (c *Credentials) SignRequest(method, requestURI string, body []byte) map[string]string {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	timestampMs := now().UnixMilli()

	window := c.Window
	if window <= 0 {
		window = DefaultAccessWindow
	}

	return map[string]string{
		HeaderAccessKey:       c.APIKey,
		HeaderAccessSignature: c.generateSignature(timestampMs, method, requestURI, body),
		HeaderAccessTimestamp: strconv.FormatInt(timestampMs, 10),
		HeaderAccessWindow:    strconv.FormatInt(window.Milliseconds(), 10),
	}
}

// generateSignature returns the hex HMAC-SHA256 of the request.
// Message format: timestamp_ms + method + request_uri + body
func (c *Credentials) generateSignature(timestampMs int64, method, requestURI string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(c.Secret))
	mac.Write([]byte(strconv.FormatInt(timestampMs, 10)))
	mac.Write([]byte(method))
	mac.Write([]byte(requestURI))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

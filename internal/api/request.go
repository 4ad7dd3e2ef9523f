package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// APIError represents an error from the Bitvavo API.
type APIError struct {
	StatusCode int
	ErrorCode  int // Bitvavo error code, 0 if the body carried none
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.ErrorCode != 0 {
		return fmt.Sprintf("bitvavo api error %d (code %d): %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("bitvavo api error %d: %s", e.StatusCode, e.Message)
}

// errorResponse is the body Bitvavo returns for failed requests.
type errorResponse struct {
	ErrorCode int    `json:"errorCode"`
	Error     string `json:"error"`
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Message:    http.StatusText(statusCode),
		Body:       body,
	}

	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		apiErr.ErrorCode = er.ErrorCode
		apiErr.Message = er.Error
	}

	return apiErr
}

// doRequest performs a signed HTTP request with the given method and path.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.creds != nil {
		for k, v := range c.creds.SignRequest(method, req.URL.RequestURI(), nil) {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, newAPIError(resp.StatusCode, body)
	}

	return body, nil
}

// get performs a GET request and decodes the JSON response into result.
// A 2xx body carrying a Bitvavo error object is reported as an APIError.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	body, err := c.doRequest(ctx, http.MethodGet, path, query)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		var er errorResponse
		if json.Unmarshal(body, &er) == nil && er.Error != "" {
			return &APIError{StatusCode: http.StatusOK, ErrorCode: er.ErrorCode, Message: er.Error, Body: body}
		}
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

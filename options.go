package steamapi

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Option configures a Client during construction
type Option func(*Client)

// WithBaseURL overrides the default API base URL.
// Useful for testing against a mock server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the request timeout for all API calls
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// WithHTTPClient replaces the underlying HTTP client, including its
// transport and timeout settings
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(httpClient)
	}
}

// WithUserAgent overrides the User-Agent header sent with every request
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger attaches a logger for per-request debug output
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

package steamapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Version is the library version reported in the default User-Agent
const Version = "1.1.0"

// Defaults applied when no option overrides them
const (
	DefaultBaseURL = "https://api.steamapis.com"
	DefaultTimeout = 30 * time.Second
)

const defaultUserAgent = "go-steamapi/" + Version

// Client is a SteamAPIs API client. It holds one authenticated HTTP
// session reused across calls; the API key travels as an api_key query
// parameter on every request.
type Client struct {
	baseURL   string
	userAgent string
	http      *resty.Client
	logger    zerolog.Logger
	closeOnce sync.Once
}

// New creates a new SteamAPIs client. The API key is required; everything
// else has a sensible default and can be adjusted with options.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	client := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		http:      resty.New().SetTimeout(DefaultTimeout),
		logger:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.baseURL = strings.TrimRight(client.baseURL, "/")
	client.http.
		SetBaseURL(client.baseURL).
		SetHeader("User-Agent", client.userAgent).
		SetQueryParam("api_key", apiKey)

	return client, nil
}

// do performs an authenticated request against the API and returns the raw
// JSON payload. Endpoint methods build the path and parameters; everything
// that can go wrong is mapped here: 429 to ErrRateLimited, any other
// non-success status, transport failure, or malformed body to *APIError.
func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, body any) (json.RawMessage, error) {
	req := c.http.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParamsFromValues(params)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, endpoint)
	if err != nil {
		return nil, &APIError{Err: err}
	}

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("SteamAPIs request")

	if resp.StatusCode() == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if !resp.IsSuccess() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	var payload json.RawMessage
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode(), Err: err}
	}

	return payload, nil
}

// Close releases the transport resources held by the client. It is safe to
// call more than once; only the first call has any effect.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.http.GetClient().CloseIdleConnections()
	})
}

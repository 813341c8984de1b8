package steamapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Documented API defaults for the history endpoints. The client never sends
// them on its own; pass them explicitly to pin the behavior.
const (
	DefaultMedianHistoryDays = 15
	DefaultHistoryDays       = 30
)

// SearchOptions holds the optional parameters for GetMarketSearch.
// Zero values are omitted from the request, leaving the API defaults
// in effect (start 0, count 100, sorted by "popular" descending).
type SearchOptions struct {
	Start     int
	Count     int
	SortBy    string
	SortOrder string
}

// ListingsOptions holds the optional parameters for GetItemListings.
type ListingsOptions struct {
	Start int
	Count int
}

// GetMarketStats retrieves global market statistics: items tracked, apps
// covered, and total spend.
func (c *Client) GetMarketStats(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/market/stats", nil, nil)
}

// GetItemsForApp retrieves the full price listing for every market item of
// an app.
func (c *Client) GetItemsForApp(ctx context.Context, appID int64) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/market/items/%d", appID), nil, nil)
}

// GetItemsForAppCompact retrieves the compact price listing for an app: a
// flat map from market hash name to a single price value. The value
// selector picks which price field the API returns; an empty selector
// leaves the API default (CompactValueSafe) in effect.
func (c *Client) GetItemsForAppCompact(ctx context.Context, appID int64, value CompactValue) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("format", "compact")
	if value != "" {
		params.Set("compact_value", string(value))
	}
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/market/items/%d", appID), params, nil)
}

// GetAllCards retrieves trading card and foil data for all card sets
func (c *Client) GetAllCards(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/market/items/cards", nil, nil)
}

// GetItemDetails retrieves detailed market data for a single item: order
// histogram, asset description, and median price history. A positive
// medianHistoryDays bounds the history window; zero leaves the API
// default (DefaultMedianHistoryDays) in effect.
func (c *Client) GetItemDetails(ctx context.Context, appID int64, marketHashName string, medianHistoryDays int) (json.RawMessage, error) {
	params := url.Values{}
	if medianHistoryDays > 0 {
		params.Set("median_history_days", strconv.Itoa(medianHistoryDays))
	}
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/market/item/%d/%s", appID, url.PathEscape(marketHashName)), params, nil)
}

// GetPriceHistory retrieves the sale price history for an item. A positive
// days bounds the window; zero leaves the API default (DefaultHistoryDays)
// in effect.
func (c *Client) GetPriceHistory(ctx context.Context, appID int64, marketHashName string, days int) (json.RawMessage, error) {
	params := url.Values{}
	if days > 0 {
		params.Set("days", strconv.Itoa(days))
	}
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/market/history/%d/%s", appID, url.PathEscape(marketHashName)), params, nil)
}

// GetMarketSearch searches the market items of an app by name
func (c *Client) GetMarketSearch(ctx context.Context, appID int64, query string, opts *SearchOptions) (json.RawMessage, error) {
	params := url.Values{}
	if query != "" {
		params.Set("query", query)
	}
	if opts != nil {
		if opts.Start > 0 {
			params.Set("start", strconv.Itoa(opts.Start))
		}
		if opts.Count > 0 {
			params.Set("count", strconv.Itoa(opts.Count))
		}
		if opts.SortBy != "" {
			params.Set("sort_by", opts.SortBy)
		}
		if opts.SortOrder != "" {
			params.Set("sort_order", opts.SortOrder)
		}
	}
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/market/search/%d", appID), params, nil)
}

// GetItemListings retrieves the active sell listings for an item
func (c *Client) GetItemListings(ctx context.Context, appID int64, marketHashName string, opts *ListingsOptions) (json.RawMessage, error) {
	params := url.Values{}
	if opts != nil {
		if opts.Start > 0 {
			params.Set("start", strconv.Itoa(opts.Start))
		}
		if opts.Count > 0 {
			params.Set("count", strconv.Itoa(opts.Count))
		}
	}
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/market/listings/%d/%s", appID, url.PathEscape(marketHashName)), params, nil)
}

// GetItemOrders retrieves the buy and sell order book for an item
func (c *Client) GetItemOrders(ctx context.Context, appID int64, marketHashName string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/market/orders/%d/%s", appID, url.PathEscape(marketHashName)), nil, nil)
}

// GetPopularItems retrieves the most popular market items for an app. A
// positive count caps the result size; zero leaves the API default (100)
// in effect.
func (c *Client) GetPopularItems(ctx context.Context, appID int64, count int) (json.RawMessage, error) {
	params := url.Values{}
	if count > 0 {
		params.Set("count", strconv.Itoa(count))
	}
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/market/popular/%d", appID), params, nil)
}

// GetRecentItems retrieves the most recently listed market items for an
// app. A positive count caps the result size; zero leaves the API default
// (100) in effect.
func (c *Client) GetRecentItems(ctx context.Context, appID int64, count int) (json.RawMessage, error) {
	params := url.Values{}
	if count > 0 {
		params.Set("count", strconv.Itoa(count))
	}
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/market/recent/%d", appID), params, nil)
}

// GetPriceOverview retrieves current price overviews for a batch of items
// in a single call
func (c *Client) GetPriceOverview(ctx context.Context, appID int64, marketHashNames []string) (json.RawMessage, error) {
	body := map[string][]string{"items": marketHashNames}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/market/prices/%d", appID), nil, body)
}

// GetFloatValue retrieves the float value, paint seed, and wear tier for a
// CS:GO/CS2 item identified by its inspect link
func (c *Client) GetFloatValue(ctx context.Context, inspectLink string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("inspect_link", inspectLink)
	return c.do(ctx, http.MethodGet, "/market/float", params, nil)
}

// GetAppDetails retrieves store details for a single app
func (c *Client) GetAppDetails(ctx context.Context, appID int64) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/market/app/%d", appID), nil, nil)
}

// GetAllApps retrieves the list of all apps tracked by SteamAPIs
func (c *Client) GetAllApps(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/market/apps", nil, nil)
}

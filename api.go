package steamapi

import (
	"context"
	"encoding/json"
)

// API defines the interface for SteamAPIs operations. *Client implements
// it; consumers can depend on the interface for testability.
type API interface {
	// Market data
	GetMarketStats(ctx context.Context) (json.RawMessage, error)
	GetItemsForApp(ctx context.Context, appID int64) (json.RawMessage, error)
	GetItemsForAppCompact(ctx context.Context, appID int64, value CompactValue) (json.RawMessage, error)
	GetAllCards(ctx context.Context) (json.RawMessage, error)
	GetItemDetails(ctx context.Context, appID int64, marketHashName string, medianHistoryDays int) (json.RawMessage, error)
	GetPriceHistory(ctx context.Context, appID int64, marketHashName string, days int) (json.RawMessage, error)
	GetMarketSearch(ctx context.Context, appID int64, query string, opts *SearchOptions) (json.RawMessage, error)
	GetItemListings(ctx context.Context, appID int64, marketHashName string, opts *ListingsOptions) (json.RawMessage, error)
	GetItemOrders(ctx context.Context, appID int64, marketHashName string) (json.RawMessage, error)
	GetPopularItems(ctx context.Context, appID int64, count int) (json.RawMessage, error)
	GetRecentItems(ctx context.Context, appID int64, count int) (json.RawMessage, error)
	GetPriceOverview(ctx context.Context, appID int64, marketHashNames []string) (json.RawMessage, error)
	GetFloatValue(ctx context.Context, inspectLink string) (json.RawMessage, error)
	GetAppDetails(ctx context.Context, appID int64) (json.RawMessage, error)
	GetAllApps(ctx context.Context) (json.RawMessage, error)

	// Steam user data
	GetInventory(ctx context.Context, steamID string, appID, contextID int64, opts *InventoryOptions) (json.RawMessage, error)
	GetInventoryValue(ctx context.Context, steamID string, appID, contextID int64) (json.RawMessage, error)
	GetUserProfile(ctx context.Context, steamID string) (json.RawMessage, error)

	// Close releases the transport resources held by the client
	Close()
}

var _ API = (*Client)(nil)

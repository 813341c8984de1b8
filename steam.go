package steamapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// InventoryOptions holds the optional parameters for GetInventory.
// Zero values are omitted from the request.
type InventoryOptions struct {
	// Count caps the number of assets returned per call
	Count int
	// StartAssetID resumes a paged fetch after the given asset
	StartAssetID string
}

// GetInventory retrieves a user's inventory for an app context. Context 2
// is the community inventory for most games.
func (c *Client) GetInventory(ctx context.Context, steamID string, appID, contextID int64, opts *InventoryOptions) (json.RawMessage, error) {
	params := url.Values{}
	if opts != nil {
		if opts.Count > 0 {
			params.Set("count", strconv.Itoa(opts.Count))
		}
		if opts.StartAssetID != "" {
			params.Set("start_assetid", opts.StartAssetID)
		}
	}
	endpoint := fmt.Sprintf("/steam/inventory/%s/%d/%d", url.PathEscape(steamID), appID, contextID)
	return c.do(ctx, http.MethodGet, endpoint, params, nil)
}

// GetInventoryValue retrieves the total market value of a user's inventory
// for an app context
func (c *Client) GetInventoryValue(ctx context.Context, steamID string, appID, contextID int64) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("/steam/inventory/value/%s/%d/%d", url.PathEscape(steamID), appID, contextID)
	return c.do(ctx, http.MethodGet, endpoint, nil, nil)
}

// GetUserProfile retrieves a user's Steam profile by 64-bit Steam ID
func (c *Client) GetUserProfile(ctx context.Context, steamID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/steam/user/%s", url.PathEscape(steamID)), nil, nil)
}

package steamapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CompactValue selects which price field a compact listing maps each item
// name to. Dotted selectors address nested fields.
type CompactValue string

// Compact value selectors documented by SteamAPIs
const (
	CompactValueLatest CompactValue = "latest"
	CompactValueMin    CompactValue = "min"
	CompactValueAvg    CompactValue = "avg"
	CompactValueMax    CompactValue = "max"
	CompactValueMean   CompactValue = "mean"
	CompactValueSafe   CompactValue = "safe"

	CompactValueSafeLast24H CompactValue = "safe_ts.last_24h"
	CompactValueSafeLast7D  CompactValue = "safe_ts.last_7d"
	CompactValueSafeLast30D CompactValue = "safe_ts.last_30d"
	CompactValueSafeLast90D CompactValue = "safe_ts.last_90d"

	CompactValueUnstable       CompactValue = "unstable"
	CompactValueUnstableReason CompactValue = "unstable_reason"
)

// CompactPrices reshapes a full GetItemsForApp listing into the compact
// form client-side: a map from market hash name to the price selected by
// value. Items whose price data lacks the selected field, or where it is
// null or not a number, map to a nil entry so absence stays distinguishable
// from a zero price. An empty value selects CompactValueSafe.
func CompactPrices(listing json.RawMessage, value CompactValue) (map[string]*float64, error) {
	if value == "" {
		value = CompactValueSafe
	}

	var payload struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(listing, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse listing: %w", err)
	}

	prices := make(map[string]*float64, len(payload.Data))
	for _, item := range payload.Data {
		name, _ := item["market_hash_name"].(string)
		if name == "" {
			continue
		}
		prices[name] = compactPrice(item, string(value))
	}

	return prices, nil
}

// compactPrice walks the dotted selector through an item's price data and
// returns the number it lands on, or nil when any step is missing or the
// final field is not numeric.
func compactPrice(item map[string]any, selector string) *float64 {
	node, ok := item["prices"]
	if !ok {
		return nil
	}

	for _, key := range strings.Split(selector, ".") {
		fields, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		node, ok = fields[key]
		if !ok {
			return nil
		}
	}

	price, ok := node.(float64)
	if !ok {
		return nil
	}
	return &price
}

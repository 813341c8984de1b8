package steamapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testListing = json.RawMessage(`{
	"data": [
		{
			"market_hash_name": "AK-47 | Redline (Field-Tested)",
			"prices": {
				"safe": 14.5,
				"latest": 15.01,
				"safe_ts": {"last_24h": 14.3, "last_7d": 14.8},
				"unstable": false
			}
		},
		{
			"market_hash_name": "Sticker | Crown (Foil)",
			"prices": {"latest": 305.25, "safe_ts": {"last_7d": 310.0}}
		},
		{
			"market_hash_name": "Zero Item",
			"prices": {"safe": 0}
		},
		{
			"market_hash_name": "Null Item",
			"prices": {"safe": null}
		},
		{
			"market_hash_name": "Text Item",
			"prices": {"safe": "unstable"}
		},
		{
			"market_hash_name": "Bare Item"
		},
		{
			"prices": {"safe": 1.0}
		}
	]
}`)

func TestCompactPrices(t *testing.T) {
	t.Run("safe selector", func(t *testing.T) {
		prices, err := CompactPrices(testListing, CompactValueSafe)
		require.NoError(t, err)

		// The unnamed entry is dropped, everything else keyed by name.
		assert.Len(t, prices, 6)

		require.NotNil(t, prices["AK-47 | Redline (Field-Tested)"])
		assert.Equal(t, 14.5, *prices["AK-47 | Redline (Field-Tested)"])
	})

	t.Run("zero price is present, not absent", func(t *testing.T) {
		prices, err := CompactPrices(testListing, CompactValueSafe)
		require.NoError(t, err)

		require.NotNil(t, prices["Zero Item"])
		assert.Equal(t, 0.0, *prices["Zero Item"])
	})

	t.Run("missing, null, and non-numeric fields map to nil", func(t *testing.T) {
		prices, err := CompactPrices(testListing, CompactValueSafe)
		require.NoError(t, err)

		assert.Nil(t, prices["Sticker | Crown (Foil)"], "missing field")
		assert.Nil(t, prices["Null Item"], "null field")
		assert.Nil(t, prices["Text Item"], "non-numeric field")
		assert.Nil(t, prices["Bare Item"], "no price data at all")
	})

	t.Run("nested selector", func(t *testing.T) {
		prices, err := CompactPrices(testListing, CompactValueSafeLast24H)
		require.NoError(t, err)

		require.NotNil(t, prices["AK-47 | Redline (Field-Tested)"])
		assert.Equal(t, 14.3, *prices["AK-47 | Redline (Field-Tested)"])
		assert.Nil(t, prices["Sticker | Crown (Foil)"])

		prices, err = CompactPrices(testListing, CompactValueSafeLast7D)
		require.NoError(t, err)
		require.NotNil(t, prices["Sticker | Crown (Foil)"])
		assert.Equal(t, 310.0, *prices["Sticker | Crown (Foil)"])
	})

	t.Run("empty selector defaults to safe", func(t *testing.T) {
		prices, err := CompactPrices(testListing, "")
		require.NoError(t, err)

		require.NotNil(t, prices["AK-47 | Redline (Field-Tested)"])
		assert.Equal(t, 14.5, *prices["AK-47 | Redline (Field-Tested)"])
	})

	t.Run("non-numeric selector yields nil entries", func(t *testing.T) {
		prices, err := CompactPrices(testListing, CompactValueUnstable)
		require.NoError(t, err)
		assert.Nil(t, prices["AK-47 | Redline (Field-Tested)"])
	})

	t.Run("empty listing", func(t *testing.T) {
		prices, err := CompactPrices(json.RawMessage(`{}`), CompactValueSafe)
		require.NoError(t, err)
		assert.Empty(t, prices)
	})

	t.Run("malformed listing", func(t *testing.T) {
		_, err := CompactPrices(json.RawMessage(`not json`), CompactValueSafe)
		require.Error(t, err)
	})
}

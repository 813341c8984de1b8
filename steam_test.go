package steamapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSteamID = "76561197993496553"

func TestGetInventory(t *testing.T) {
	t.Run("with options", func(t *testing.T) {
		server, captured := newCaptureServer(t, `{"items":[]}`)
		client := newTestClient(t, server.URL)

		opts := &InventoryOptions{Count: 500, StartAssetID: "12345678910"}
		_, err := client.GetInventory(context.Background(), testSteamID, 730, 2, opts)
		require.NoError(t, err)

		assert.Equal(t, http.MethodGet, captured.method)
		assert.Equal(t, "/steam/inventory/"+testSteamID+"/730/2", captured.path)
		assert.Equal(t, "500", captured.query.Get("count"))
		assert.Equal(t, "12345678910", captured.query.Get("start_assetid"))
	})

	t.Run("without options", func(t *testing.T) {
		server, captured := newCaptureServer(t, `{"items":[]}`)
		client := newTestClient(t, server.URL)

		_, err := client.GetInventory(context.Background(), testSteamID, 730, 2, nil)
		require.NoError(t, err)

		assert.False(t, captured.query.Has("count"))
		assert.False(t, captured.query.Has("start_assetid"))
	})
}

func TestGetInventoryValue(t *testing.T) {
	server, captured := newCaptureServer(t, `{"total_value":123.45}`)
	client := newTestClient(t, server.URL)

	_, err := client.GetInventoryValue(context.Background(), testSteamID, 730, 2)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, captured.method)
	assert.Equal(t, "/steam/inventory/value/"+testSteamID+"/730/2", captured.path)
}

func TestGetUserProfile(t *testing.T) {
	server, captured := newCaptureServer(t, `{"personaname":"tester"}`)
	client := newTestClient(t, server.URL)

	payload, err := client.GetUserProfile(context.Background(), testSteamID)
	require.NoError(t, err)

	assert.Equal(t, "/steam/user/"+testSteamID, captured.path)
	assert.JSONEq(t, `{"personaname":"tester"}`, string(payload))
}

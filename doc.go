// Package steamapi provides a client for the SteamAPIs market data service.
//
// SteamAPIs (https://steamapis.com) aggregates Steam community market data:
// item prices, order books, sale histories, inventories, and profile
// information, keyed by an API key.
//
// # Usage
//
// Create a client with your API key and close it when done:
//
//	client, err := steamapi.New("your-api-key")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	stats, err := client.GetMarketStats(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Every endpoint method returns the API's JSON payload unchanged as a
// json.RawMessage; decode the fields you need. Optional parameters left at
// their zero value are omitted from the request so the API defaults apply.
//
// # Error Handling
//
// The package defines a small error taxonomy:
//
//   - ErrAPIKeyRequired: the client was constructed without an API key
//   - ErrRateLimited: the API answered with HTTP 429
//   - APIError: any other non-success status, transport failure, or
//     unparseable response
//
// Sentinels are checked with errors.Is, the structured error with
// errors.As:
//
//	if errors.Is(err, steamapi.ErrRateLimited) {
//		// back off and retry later
//	}
//	var apiErr *steamapi.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// unknown item or app
//	}
//
// The client never retries or caches; callers own backoff policy.
package steamapi

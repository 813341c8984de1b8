package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sat-14/steamapi"
	"github.com/Sat-14/steamapi/filter"
)

// Command flags
var (
	itemsValue      string
	itemsFilter     string
	itemsLimit      int
	itemMedianDays  int
	historyDays     int
	searchStart     int
	searchCount     int
	searchSortBy    string
	searchSortOrder string
	popularCount    int
	recentCount     int
	appsLimit       int
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show global market statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	payload, err := client.GetMarketStats(context.Background())
	if err != nil {
		return err
	}

	var stats struct {
		Count int            `json:"count"`
		Stats map[string]any `json:"stats"`
	}
	if err := json.Unmarshal(payload, &stats); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	fmt.Printf("Market statistics:\n")
	fmt.Printf("- Items tracked: %d\n", stats.Count)
	for _, key := range []string{"totalApps", "totalCount", "totalSpent"} {
		if value, ok := stats.Stats[key]; ok {
			fmt.Printf("- %s: %v\n", key, value)
		}
	}

	return nil
}

// itemsCmd represents the items command
var itemsCmd = &cobra.Command{
	Use:   "items <app-id>",
	Short: "List market items for an app with a single price column",
	Long: `List the market items of an app. The full listing is fetched once and
reduced client-side to the price field selected with --value. Use --filter
to narrow the output with an expression over name, price, and has_price.`,
	Args: cobra.ExactArgs(1),
	RunE: runItems,
}

func init() {
	itemsCmd.Flags().StringVar(&itemsValue, "value", "safe", "price field to display (latest, min, avg, max, mean, safe, safe_ts.last_24h, ...)")
	itemsCmd.Flags().StringVarP(&itemsFilter, "filter", "f", "", "filter expression, e.g. 'has_price && price > 10'")
	itemsCmd.Flags().IntVar(&itemsLimit, "limit", 25, "maximum number of items to print (0 prints all)")
}

func runItems(cmd *cobra.Command, args []string) error {
	appID, err := parseAppID(args[0])
	if err != nil {
		return err
	}

	var match *filter.Filter
	if itemsFilter != "" {
		match, err = filter.Compile(itemsFilter)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	listing, err := client.GetItemsForApp(context.Background(), appID)
	if err != nil {
		return err
	}

	prices, err := steamapi.CompactPrices(listing, steamapi.CompactValue(itemsValue))
	if err != nil {
		return err
	}

	names := make([]string, 0, len(prices))
	for name := range prices {
		names = append(names, name)
	}
	sort.Strings(names)

	printed, matched := 0, 0
	for _, name := range names {
		price := prices[name]
		if match != nil {
			ok, err := match.Match(filter.Entry{Name: name, Price: price})
			if err != nil {
				logger.Warn().Err(err).Str("item", name).Msg("Filter evaluation failed, skipping item")
				continue
			}
			if !ok {
				continue
			}
		}
		matched++
		if itemsLimit > 0 && printed >= itemsLimit {
			continue
		}
		if price != nil {
			fmt.Printf("%-60s $%.2f\n", name, *price)
		} else {
			fmt.Printf("%-60s (no price)\n", name)
		}
		printed++
	}

	fmt.Printf("\n%d of %d items matched\n", matched, len(names))
	return nil
}

// itemCmd represents the item command
var itemCmd = &cobra.Command{
	Use:   "item <app-id> <market-hash-name>",
	Short: "Show market details for a single item",
	Args:  cobra.ExactArgs(2),
	RunE:  runItem,
}

func init() {
	itemCmd.Flags().IntVar(&itemMedianDays, "median-days", 0, "median price history window in days (0 uses the API default)")
}

func runItem(cmd *cobra.Command, args []string) error {
	appID, err := parseAppID(args[0])
	if err != nil {
		return err
	}

	payload, err := client.GetItemDetails(context.Background(), appID, args[1], itemMedianDays)
	if err != nil {
		return err
	}

	var item map[string]any
	if err := json.Unmarshal(payload, &item); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	for _, key := range []string{"market_name", "nameID", "border_color"} {
		if value, ok := item[key]; ok {
			fmt.Printf("%s: %v\n", key, value)
		}
	}

	if histogram, ok := item["histogram"].(map[string]any); ok {
		for _, key := range []string{"lowest_sell_order", "highest_buy_order"} {
			if value, ok := histogram[key]; ok {
				fmt.Printf("%s: %v\n", key, value)
			}
		}
	}

	// The median history field name carries the window length.
	for key, value := range item {
		if !strings.HasPrefix(key, "median_avg_prices_") {
			continue
		}
		if points, ok := value.([]any); ok {
			fmt.Printf("%s: %d points\n", key, len(points))
		}
	}

	return nil
}

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history <app-id> <market-hash-name>",
	Short: "Show the sale price history for an item",
	Args:  cobra.ExactArgs(2),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyDays, "days", 0, "history window in days (0 uses the API default)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	appID, err := parseAppID(args[0])
	if err != nil {
		return err
	}

	payload, err := client.GetPriceHistory(context.Background(), appID, args[1], historyDays)
	if err != nil {
		return err
	}

	var history map[string]any
	if err := json.Unmarshal(payload, &history); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if points, ok := history["prices"].([]any); ok {
		fmt.Printf("%d price points\n", len(points))
		if len(points) > 0 {
			fmt.Printf("latest: %v\n", points[len(points)-1])
		}
	}

	return nil
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <app-id> <query>",
	Short: "Search the market items of an app",
	Args:  cobra.ExactArgs(2),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchStart, "start", 0, "result offset")
	searchCmd.Flags().IntVar(&searchCount, "count", 0, "maximum results (0 uses the API default)")
	searchCmd.Flags().StringVar(&searchSortBy, "sort-by", "", "sort field (e.g. popular, price)")
	searchCmd.Flags().StringVar(&searchSortOrder, "sort-order", "", "sort direction (asc, desc)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	appID, err := parseAppID(args[0])
	if err != nil {
		return err
	}

	opts := &steamapi.SearchOptions{
		Start:     searchStart,
		Count:     searchCount,
		SortBy:    searchSortBy,
		SortOrder: searchSortOrder,
	}
	payload, err := client.GetMarketSearch(context.Background(), appID, args[1], opts)
	if err != nil {
		return err
	}

	var search struct {
		Results []struct {
			Name      string  `json:"name"`
			SellPrice float64 `json:"sell_price"`
		} `json:"results"`
	}
	if err := json.Unmarshal(payload, &search); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if len(search.Results) == 0 {
		fmt.Println("No items found.")
		return nil
	}

	for _, result := range search.Results {
		fmt.Printf("%-60s $%.2f\n", result.Name, result.SellPrice/100)
	}
	fmt.Printf("\n%d results\n", len(search.Results))

	return nil
}

// pricesCmd represents the prices command
var pricesCmd = &cobra.Command{
	Use:   "prices <app-id> <market-hash-name>...",
	Short: "Fetch price overviews for a batch of items",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runPrices,
}

func runPrices(cmd *cobra.Command, args []string) error {
	appID, err := parseAppID(args[0])
	if err != nil {
		return err
	}

	payload, err := client.GetPriceOverview(context.Background(), appID, args[1:])
	if err != nil {
		return err
	}

	var overview struct {
		Items map[string]map[string]any `json:"items"`
	}
	if err := json.Unmarshal(payload, &overview); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	for _, name := range args[1:] {
		item, ok := overview.Items[name]
		if !ok {
			fmt.Printf("%-60s (not found)\n", name)
			continue
		}
		if lowest, ok := item["lowest_price"]; ok {
			fmt.Printf("%-60s %v\n", name, lowest)
		} else {
			fmt.Printf("%-60s (no price)\n", name)
		}
	}

	return nil
}

// popularCmd represents the popular command
var popularCmd = &cobra.Command{
	Use:   "popular <app-id>",
	Short: "List the most popular market items for an app",
	Args:  cobra.ExactArgs(1),
	RunE:  runPopular,
}

func init() {
	popularCmd.Flags().IntVar(&popularCount, "count", 0, "maximum items (0 uses the API default)")
}

func runPopular(cmd *cobra.Command, args []string) error {
	appID, err := parseAppID(args[0])
	if err != nil {
		return err
	}

	payload, err := client.GetPopularItems(context.Background(), appID, popularCount)
	if err != nil {
		return err
	}

	return printItemNames(payload)
}

// recentCmd represents the recent command
var recentCmd = &cobra.Command{
	Use:   "recent <app-id>",
	Short: "List the most recently listed market items for an app",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecent,
}

func init() {
	recentCmd.Flags().IntVar(&recentCount, "count", 0, "maximum items (0 uses the API default)")
}

func runRecent(cmd *cobra.Command, args []string) error {
	appID, err := parseAppID(args[0])
	if err != nil {
		return err
	}

	payload, err := client.GetRecentItems(context.Background(), appID, recentCount)
	if err != nil {
		return err
	}

	return printItemNames(payload)
}

// printItemNames renders the {"items": [...]} lists shared by the popular
// and recent endpoints
func printItemNames(payload json.RawMessage) error {
	var listing struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(payload, &listing); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	for _, item := range listing.Items {
		if name, ok := item["name"]; ok {
			fmt.Printf("- %v\n", name)
		}
	}
	fmt.Printf("\n%d items\n", len(listing.Items))

	return nil
}

// floatCmd represents the float command
var floatCmd = &cobra.Command{
	Use:   "float <inspect-link>",
	Short: "Look up the float value for a CS:GO/CS2 inspect link",
	Args:  cobra.ExactArgs(1),
	RunE:  runFloat,
}

func runFloat(cmd *cobra.Command, args []string) error {
	payload, err := client.GetFloatValue(context.Background(), args[0])
	if err != nil {
		return err
	}

	var info map[string]any
	if err := json.Unmarshal(payload, &info); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	for _, key := range []string{"float_value", "paint_seed", "paint_index", "wear_tier"} {
		if value, ok := info[key]; ok {
			fmt.Printf("%s: %v\n", key, value)
		}
	}

	return nil
}

// appCmd represents the app command
var appCmd = &cobra.Command{
	Use:   "app <app-id>",
	Short: "Show store details for an app",
	Args:  cobra.ExactArgs(1),
	RunE:  runApp,
}

func runApp(cmd *cobra.Command, args []string) error {
	appID, err := parseAppID(args[0])
	if err != nil {
		return err
	}

	payload, err := client.GetAppDetails(context.Background(), appID)
	if err != nil {
		return err
	}

	var app struct {
		Name          string         `json:"name"`
		Type          string         `json:"type"`
		IsFree        bool           `json:"is_free"`
		Developers    []string       `json:"developers"`
		Publishers    []string       `json:"publishers"`
		PriceOverview map[string]any `json:"price_overview"`
	}
	if err := json.Unmarshal(payload, &app); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	fmt.Printf("%s (%s)\n", app.Name, app.Type)
	if app.IsFree {
		fmt.Println("Price: free to play")
	} else if price, ok := app.PriceOverview["final_formatted"]; ok {
		fmt.Printf("Price: %v\n", price)
	}
	if len(app.Developers) > 0 {
		fmt.Printf("Developers: %s\n", strings.Join(app.Developers, ", "))
	}
	if len(app.Publishers) > 0 {
		fmt.Printf("Publishers: %s\n", strings.Join(app.Publishers, ", "))
	}

	return nil
}

// appsCmd represents the apps command
var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List the apps tracked by SteamAPIs",
	RunE:  runApps,
}

func init() {
	appsCmd.Flags().IntVar(&appsLimit, "limit", 20, "maximum apps to print (0 prints all)")
}

func runApps(cmd *cobra.Command, args []string) error {
	payload, err := client.GetAllApps(context.Background())
	if err != nil {
		return err
	}

	var apps []map[string]any
	if err := json.Unmarshal(payload, &apps); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	for i, app := range apps {
		if appsLimit > 0 && i >= appsLimit {
			break
		}
		fmt.Printf("- %v (%v)\n", app["name"], app["appID"])
	}
	fmt.Printf("\n%d apps tracked\n", len(apps))

	return nil
}

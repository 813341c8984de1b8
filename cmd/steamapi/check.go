package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sat-14/steamapi"
)

var checkCategory string

// Styles for check output
var (
	passStyle   = color.New(color.FgGreen, color.Bold)
	failStyle   = color.New(color.FgRed, color.Bold)
	skipStyle   = color.New(color.FgYellow, color.Bold)
	headerStyle = color.New(color.FgCyan, color.Bold)
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe every API endpoint and report a pass/fail summary",
	Long: `Probe each SteamAPIs endpoint with a live request using the fixtures
from the check section of the config. Useful for verifying an API key and
spotting endpoints your plan does not cover.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkCategory, "category", "", "probe a single category (see check --help for the list)")
}

// probe is one endpoint call exercised by the check command
type probe struct {
	name string
	call func(ctx context.Context) (json.RawMessage, error)
}

// checkRunner tracks results across probes
type checkRunner struct {
	passed  int
	failed  int
	skipped int
}

func (r *checkRunner) run(ctx context.Context, p probe) {
	start := time.Now()
	payload, err := p.call(ctx)
	elapsed := time.Since(start).Round(time.Millisecond)

	switch {
	case errors.Is(err, steamapi.ErrRateLimited):
		r.skipped++
		fmt.Printf("%s  %-28s rate limited\n", skipStyle.Sprint("- SKIP"), p.name)
	case err != nil:
		r.failed++
		fmt.Printf("%s  %-28s %v\n", failStyle.Sprint("x FAIL"), p.name, err)
	default:
		r.passed++
		fmt.Printf("%s  %-28s %s, %d bytes\n", passStyle.Sprint("+ PASS"), p.name, elapsed, len(payload))
	}
}

func (r *checkRunner) summary() {
	total := r.passed + r.failed + r.skipped

	fmt.Printf("\n%s\n", headerStyle.Sprint("Summary"))
	fmt.Printf("- Total: %d\n", total)
	fmt.Printf("- %s: %d\n", passStyle.Sprint("Passed"), r.passed)
	fmt.Printf("- %s: %d\n", failStyle.Sprint("Failed"), r.failed)
	fmt.Printf("- %s: %d\n", skipStyle.Sprint("Skipped"), r.skipped)

	if total > 0 {
		fmt.Printf("- Success rate: %.1f%%\n", float64(r.passed)/float64(total)*100)
	}
}

// checkCategories maps category keys to the probes they run. Keys mirror
// the endpoint groups of the API documentation.
func checkCategories() map[string][]probe {
	steamID := cfg.Check.SteamID
	appID := cfg.Check.AppID
	itemName := cfg.Check.ItemName
	inspectLink := cfg.Check.InspectLink

	return map[string][]probe{
		"market_stats": {
			{"Market Statistics", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetMarketStats(ctx)
			}},
		},
		"app": {
			{"App Details", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetAppDetails(ctx, appID)
			}},
			{"All Apps", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetAllApps(ctx)
			}},
		},
		"item": {
			{"Item Details", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetItemDetails(ctx, appID, itemName, 7)
			}},
			{"Items (Full)", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetItemsForApp(ctx, appID)
			}},
			{"Items (Compact)", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetItemsForAppCompact(ctx, appID, steamapi.CompactValueSafe)
			}},
		},
		"inventory": {
			{"Inventory", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetInventory(ctx, steamID, appID, 2, &steamapi.InventoryOptions{Count: 10})
			}},
			{"Inventory Value", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetInventoryValue(ctx, steamID, appID, 2)
			}},
		},
		"market": {
			{"Market Search", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetMarketSearch(ctx, appID, "ak-47", &steamapi.SearchOptions{Count: 5})
			}},
			{"Popular Items", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetPopularItems(ctx, appID, 5)
			}},
			{"Recent Items", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetRecentItems(ctx, appID, 5)
			}},
			{"Item Listings", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetItemListings(ctx, appID, itemName, &steamapi.ListingsOptions{Count: 5})
			}},
			{"Item Orders", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetItemOrders(ctx, appID, itemName)
			}},
		},
		"cards": {
			{"Trading Cards", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetAllCards(ctx)
			}},
		},
		"other": {
			{"User Profile", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetUserProfile(ctx, steamID)
			}},
			{"Float Value", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetFloatValue(ctx, inspectLink)
			}},
			{"Price History", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetPriceHistory(ctx, appID, itemName, 7)
			}},
		},
		"bulk": {
			{"Bulk Price Overview", func(ctx context.Context) (json.RawMessage, error) {
				return client.GetPriceOverview(ctx, appID, []string{
					itemName,
					"AWP | Dragon Lore (Factory New)",
				})
			}},
		},
	}
}

// checkCategoryOrder keeps the full run deterministic
var checkCategoryOrder = []string{
	"market_stats", "app", "item", "inventory", "market", "cards", "other", "bulk",
}

func runCheck(cmd *cobra.Command, args []string) error {
	categories := checkCategories()

	selected := checkCategoryOrder
	if checkCategory != "" {
		key := strings.ToLower(checkCategory)
		if _, ok := categories[key]; !ok {
			known := make([]string, 0, len(categories))
			for name := range categories {
				known = append(known, name)
			}
			sort.Strings(known)
			return fmt.Errorf("unknown category %q (available: %s)", checkCategory, strings.Join(known, ", "))
		}
		selected = []string{key}
	}

	fmt.Printf("%s\n", headerStyle.Sprint("SteamAPIs endpoint check"))
	fmt.Printf("- API key: %s\n", maskKey(cfg.SteamAPIs.APIKey))
	fmt.Printf("- Steam ID: %s\n", cfg.Check.SteamID)
	fmt.Printf("- App ID: %d\n\n", cfg.Check.AppID)

	ctx := context.Background()
	runner := &checkRunner{}

	for i, key := range selected {
		fmt.Printf("%s\n", headerStyle.Sprintf("Checking %s", key))
		for _, p := range categories[key] {
			runner.run(ctx, p)
		}
		if i < len(selected)-1 {
			// Brief pause between categories to stay under the rate limit.
			time.Sleep(500 * time.Millisecond)
			fmt.Println()
		}
	}

	runner.summary()

	if runner.failed > 0 {
		return fmt.Errorf("%d of %d endpoint checks failed", runner.failed, runner.passed+runner.failed+runner.skipped)
	}
	return nil
}

// maskKey hides all but the last four characters of an API key
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

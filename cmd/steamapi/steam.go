package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sat-14/steamapi"
)

var (
	inventoryCount   int
	inventoryStartID string
)

// inventoryCmd represents the inventory command
var inventoryCmd = &cobra.Command{
	Use:   "inventory <steam-id> <app-id> [context-id]",
	Short: "List a user's inventory for an app",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runInventory,
}

func init() {
	inventoryCmd.Flags().IntVar(&inventoryCount, "count", 0, "maximum assets per call (0 uses the API default)")
	inventoryCmd.Flags().StringVar(&inventoryStartID, "start-assetid", "", "resume after the given asset id")
}

func runInventory(cmd *cobra.Command, args []string) error {
	appID, err := parseAppID(args[1])
	if err != nil {
		return err
	}
	contextID, err := parseContextID(args, 2)
	if err != nil {
		return err
	}

	opts := &steamapi.InventoryOptions{
		Count:        inventoryCount,
		StartAssetID: inventoryStartID,
	}
	payload, err := client.GetInventory(context.Background(), args[0], appID, contextID, opts)
	if err != nil {
		return err
	}

	var inventory struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(payload, &inventory); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	for _, item := range inventory.Items {
		if name, ok := item["market_hash_name"]; ok {
			fmt.Printf("- %v\n", name)
		}
	}
	fmt.Printf("\n%d items\n", len(inventory.Items))

	return nil
}

// inventoryValueCmd represents the inventory-value command
var inventoryValueCmd = &cobra.Command{
	Use:   "inventory-value <steam-id> <app-id> [context-id]",
	Short: "Show the total market value of a user's inventory",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runInventoryValue,
}

func runInventoryValue(cmd *cobra.Command, args []string) error {
	appID, err := parseAppID(args[1])
	if err != nil {
		return err
	}
	contextID, err := parseContextID(args, 2)
	if err != nil {
		return err
	}

	payload, err := client.GetInventoryValue(context.Background(), args[0], appID, contextID)
	if err != nil {
		return err
	}

	var value map[string]any
	if err := json.Unmarshal(payload, &value); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if total, ok := value["total_value"]; ok {
		fmt.Printf("Total value: $%v\n", total)
	}

	return nil
}

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:   "profile <steam-id>",
	Short: "Show a user's Steam profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfile,
}

func runProfile(cmd *cobra.Command, args []string) error {
	payload, err := client.GetUserProfile(context.Background(), args[0])
	if err != nil {
		return err
	}

	var profile map[string]any
	if err := json.Unmarshal(payload, &profile); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	for _, key := range []string{"personaname", "realname", "profileurl", "countryCode"} {
		if value, ok := profile[key]; ok {
			fmt.Printf("%s: %v\n", key, value)
		}
	}

	return nil
}

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/cli/client"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/cli/config"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/cli/ui"
)

// vendorsCmd is the vendors command
var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "list restaurants and stores",
	Long: `List the vendor directory with ratings, delivery estimates and
cuisine categories.`,
	Example: `  # Browse vendors
  $ chowctl vendors`,
	RunE: runVendors,
}

func init() {
	vendorsCmd.SilenceUsage = true
}

func runVendors(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		ui.PrintError("unexpected argument: %s", args[0])
		fmt.Printf("\nRun '%s --help' for usage.\n", cmd.CommandPath())
		return fmt.Errorf("invalid arguments")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	apiClient, err := client.NewAPIClient(cfg.Server)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	vendors, err := apiClient.Vendors(ctx)
	if err != nil {
		ui.PrintError("failed to fetch vendors: %v", err)
		return fmt.Errorf("vendors fetch failed")
	}

	fmt.Println()
	ui.PrintVendors(vendors)
	fmt.Printf("\n%d vendors\n", len(vendors))

	return nil
}

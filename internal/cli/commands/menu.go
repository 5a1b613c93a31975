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

// menuCmd is the menu command
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "list all orderable items",
	Long: `List the full menu, including sponsored listings.

Each line shows the item name, the vendor that serves it, and the price.
Sponsored listings are marked with [Ad].`,
	Example: `  # Browse the menu
  $ chowctl menu`,
	RunE: runMenu,
}

func init() {
	menuCmd.SilenceUsage = true
}

func runMenu(cmd *cobra.Command, args []string) error {
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

	items, err := apiClient.Menu(ctx)
	if err != nil {
		ui.PrintError("failed to fetch menu: %v", err)
		return fmt.Errorf("menu fetch failed")
	}

	fmt.Println()
	ui.PrintCards(items)
	fmt.Printf("\n%d items\n", len(items))

	return nil
}

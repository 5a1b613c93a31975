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

// connectCmd is the connect command
var connectCmd = &cobra.Command{
	Use:   "connect [server]",
	Short: "point the CLI at an API server",
	Long: `Verify the API server is reachable and save its address locally.

The address is stored in ~/.chowctl/config.json and used automatically for
all subsequent commands.

If server is not provided, defaults to http://localhost:8080.`,
	Example: `  # Connect to default server (localhost:8080)
  $ chowctl connect

  # Connect to custom server
  $ chowctl connect http://food.example.com:8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConnect,
}

func init() {
	// Silence usage to avoid showing help on every error
	connectCmd.SilenceUsage = true
}

func runConnect(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	server := "http://localhost:8080"
	if len(args) > 0 {
		server = args[0]
	}

	apiClient, err := client.NewAPIClient(server)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return fmt.Errorf("client creation failed")
	}

	ui.PrintInfo("Connecting to %s...", server)

	if err := apiClient.Ping(ctx); err != nil {
		ui.PrintError("server is not reachable: %v", err)
		return fmt.Errorf("connection failed")
	}

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	cfg.Server = server
	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
		return fmt.Errorf("config save failed")
	}

	configPath, _ := config.GetConfigPath()
	ui.PrintSuccess("Connected to %s", server)
	ui.PrintInfo("Config saved to %s", configPath)

	fmt.Println()
	ui.PrintInfo("You can now use the following commands:")
	fmt.Println(ui.Styles.Bold.Render("  chowctl chat     # Start an interactive chat"))
	fmt.Println(ui.Styles.Bold.Render("  chowctl menu     # Browse the menu"))

	return nil
}

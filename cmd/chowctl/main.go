package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/cli/commands"
	"github.com/Oluwafemi-Adelekan/chowpal-demo/internal/cli/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		// Handle unknown command errors specially
		errMsg := err.Error()
		if strings.Contains(errMsg, "unknown command") {
			ui.PrintError("%s", errMsg)
			fmt.Println("\nRun 'chowctl --help' for usage.")
		}
		os.Exit(1)
	}
}

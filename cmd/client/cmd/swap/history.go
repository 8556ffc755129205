package swap

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rewear/cmd/client/cmd/types"
	"rewear/internal/app/client"
)

var historyJSON bool

var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished swaps",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		history, err := app.SwapHistory(ctx)
		if err != nil {
			return fmt.Errorf("failed to load swap history: %w", err)
		}

		if historyJSON {
			return json.NewEncoder(os.Stdout).Encode(history)
		}

		return printSwapsTable(history)
	},
}

func init() {
	HistoryCmd.Flags().BoolVar(&historyJSON, "json", false, "print as JSON")
}

package swap

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"rewear/cmd/client/cmd/types"
	"rewear/internal/app/client"
)

var CompleteCmd = &cobra.Command{
	Use:   "complete <swap-id>",
	Short: "Mark an accepted swap as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid swap id: %s", args[0])
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.CompleteSwap(ctx, id); err != nil {
			return fmt.Errorf("failed to complete swap: %w", err)
		}

		fmt.Printf("Swap #%d completed\n", id)
		return nil
	},
}

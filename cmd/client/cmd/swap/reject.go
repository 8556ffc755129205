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

var RejectCmd = &cobra.Command{
	Use:   "reject <swap-id>",
	Short: "Reject a swap request for your item",
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

		if err := app.RejectSwap(ctx, id); err != nil {
			return fmt.Errorf("failed to reject swap: %w", err)
		}

		fmt.Printf("Swap #%d rejected\n", id)
		return nil
	},
}

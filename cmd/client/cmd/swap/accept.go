package swap

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rewear/cmd/client/cmd/types"
	"rewear/internal/app/client"
)

var AcceptCmd = &cobra.Command{
	Use:   "accept <swap-id>",
	Short: "Accept a swap request for your item",
	Long: `Accept a pending swap request. Acceptance changes your points, rating
and swap count on the server, so the session profile is refreshed
afterwards.`,
	Args: cobra.ExactArgs(1),
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

		if err := app.AcceptSwap(ctx, id); err != nil {
			return fmt.Errorf("failed to accept swap: %w", err)
		}

		fmt.Println(color.GreenString("Swap accepted."))
		if u := app.Snapshot().User; u != nil {
			fmt.Printf("You now have %d points and %d completed swaps\n", u.Points, u.SwapsCompleted)
		}
		return nil
	},
}

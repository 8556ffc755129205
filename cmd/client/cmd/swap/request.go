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
	"rewear/internal/domain/swap"
)

var requestMessage string

var RequestCmd = &cobra.Command{
	Use:   "request <item-id>",
	Short: "Request a swap for another user's item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		itemID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id: %s", args[0])
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		// The backend needs the requester and the item's owner; fetch
		// both from the current session and the listing itself.
		snap := app.Snapshot()
		if snap.User == nil {
			if err := app.RefreshUser(ctx); err != nil {
				return fmt.Errorf("you must be logged in to request a swap: %w", err)
			}
			snap = app.Snapshot()
		}

		it, err := app.GetItem(ctx, itemID)
		if err != nil {
			return fmt.Errorf("failed to fetch item: %w", err)
		}

		created, err := app.CreateSwap(ctx, swap.CreateRequest{
			ItemID:      it.ID,
			RequesterID: snap.User.ID,
			OwnerID:     it.OwnerID,
			Message:     requestMessage,
		})
		if err != nil {
			return fmt.Errorf("failed to create swap request: %w", err)
		}

		fmt.Println(color.GreenString("Swap requested."))
		fmt.Printf("Request #%d for item #%d is %s\n", created.ID, created.ItemID, created.Status)
		return nil
	},
}

func init() {
	RequestCmd.Flags().StringVarP(&requestMessage, "message", "m", "", "message to the item owner")
}

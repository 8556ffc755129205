package admin

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"rewear/cmd/client/cmd/types"
	"rewear/internal/app/client"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <item-id>",
	Short: "Delete a listing outright",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id: %s", args[0])
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := ensureAdminSession(ctx, app); err != nil {
			return err
		}

		if err := app.AdminDeleteItem(ctx, id); err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}

		fmt.Printf("Deleted item #%d\n", id)
		return nil
	},
}

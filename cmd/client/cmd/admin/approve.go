package admin

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

var ApproveCmd = &cobra.Command{
	Use:   "approve <item-id>",
	Short: "Approve a pending listing",
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

		it, err := app.AdminApproveItem(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to approve item: %w", err)
		}

		fmt.Printf("%s #%d %s is now %s\n", color.GreenString("Approved:"), it.ID, it.Title, it.Status)
		return nil
	},
}

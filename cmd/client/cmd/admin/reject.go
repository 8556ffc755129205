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

var RejectCmd = &cobra.Command{
	Use:   "reject <item-id>",
	Short: "Reject a pending listing",
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

		it, err := app.AdminRejectItem(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to reject item: %w", err)
		}

		fmt.Printf("%s #%d %s\n", color.RedString("Rejected:"), it.ID, it.Title)
		return nil
	},
}

package admin

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

var statsJSON bool

var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show moderation dashboard stats",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := ensureAdminSession(ctx, app); err != nil {
			return err
		}

		stats, err := app.AdminStats(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch stats: %w", err)
		}

		if statsJSON {
			return json.NewEncoder(os.Stdout).Encode(stats)
		}

		fmt.Printf("items:  %d total, %d pending, %d approved, %d rejected\n",
			stats.TotalItems, stats.PendingItems, stats.ApprovedItems, stats.RejectedItems)
		fmt.Printf("users:  %d total, %d admins\n", stats.TotalUsers, stats.AdminUsers)

		return nil
	},
}

// ensureAdminSession fetches the profile once when the store holds no
// session user yet, so the local admin guard has something to check.
func ensureAdminSession(ctx context.Context, app *client.App) error {
	if app.Snapshot().User != nil {
		return nil
	}
	if err := app.RefreshUser(ctx); err != nil {
		return fmt.Errorf("admin commands require a logged-in session: %w", err)
	}
	return nil
}

func init() {
	StatsCmd.Flags().BoolVar(&statsJSON, "json", false, "print as JSON")
}

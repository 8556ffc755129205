// cmd/client/cmd/admin/items.go
package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"rewear/cmd/client/cmd/types"
	"rewear/internal/app/client"
	"rewear/internal/domain/item"
)

var (
	itemsPending bool
	itemsStatus  string
	itemsJSON    bool
)

var ItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List items for moderation",
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

		var items []item.Item
		var err error
		switch {
		case itemsPending:
			items, err = app.AdminPendingItems(ctx)
		case itemsStatus != "":
			items, err = app.AdminItemsByStatus(ctx, item.Status(itemsStatus))
		default:
			items, err = app.AdminItems(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}

		if itemsJSON {
			return json.NewEncoder(os.Stdout).Encode(items)
		}

		if len(items) == 0 {
			fmt.Println("No items")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tOWNER\tSTATUS\tADDED")
		for _, it := range items {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", it.ID, it.Title, it.OwnerID, it.Status, it.DateAdded)
		}
		return w.Flush()
	},
}

func init() {
	ItemsCmd.Flags().BoolVar(&itemsPending, "pending", false, "only items awaiting moderation")
	ItemsCmd.Flags().StringVar(&itemsStatus, "status", "", "filter by lifecycle status")
	ItemsCmd.Flags().BoolVar(&itemsJSON, "json", false, "print as JSON")
}

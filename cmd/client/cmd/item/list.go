// cmd/client/cmd/item/list.go
package item

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rewear/cmd/client/cmd/types"
	"rewear/internal/app/client"
	"rewear/internal/domain/item"
)

var (
	listSkip      int
	listLimit     int
	listFormat    string
	listCategory  string
	listSize      string
	listCondition string
	listLocation  string
	listQuery     string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse listings",
	Long: `Fetch listings from the server and print them, optionally narrowed by
category, size, condition, location or a free-text query. Filters apply
locally over the fetched page.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.LoadItems(ctx, listSkip, listLimit); err != nil {
			return fmt.Errorf("failed to load items: %w", err)
		}

		applyFilterFlags(app)
		items := app.FilteredItems()

		switch listFormat {
		case "json":
			return json.NewEncoder(os.Stdout).Encode(items)
		default:
			return printItemsTable(items)
		}
	},
}

func applyFilterFlags(app *client.App) {
	var u item.FilterUpdate
	if listCategory != "" {
		u.Category = &listCategory
	}
	if listSize != "" {
		u.Size = &listSize
	}
	if listCondition != "" {
		u.Condition = &listCondition
	}
	if listLocation != "" {
		u.Location = &listLocation
	}
	if listQuery != "" {
		u.Query = &listQuery
	}
	app.SetSearchFilters(u)
}

func printItemsTable(items []item.Item) error {
	if len(items) == 0 {
		fmt.Println("No items found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tSIZE\tCONDITION\tPOINTS\tSTATUS\tFAV")
	for _, it := range items {
		fav := ""
		if it.IsFavorite {
			fav = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			it.ID, it.Title, it.Category, it.Size, it.Condition,
			it.Points, colorStatus(it.Status), fav)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d item(s)\n", len(items))
	return nil
}

func colorStatus(s item.Status) string {
	switch s {
	case item.StatusAvailable:
		return color.GreenString(string(s))
	case item.StatusPending:
		return color.YellowString(string(s))
	case item.StatusRejected:
		return color.RedString(string(s))
	default:
		return string(s)
	}
}

func init() {
	ListCmd.Flags().IntVar(&listSkip, "skip", 0, "pagination offset")
	ListCmd.Flags().IntVar(&listLimit, "limit", 50, "page size")
	ListCmd.Flags().StringVar(&listFormat, "format", "table", "output format (table|json)")
	ListCmd.Flags().StringVar(&listCategory, "category", "", "filter by category")
	ListCmd.Flags().StringVar(&listSize, "size", "", "filter by size")
	ListCmd.Flags().StringVar(&listCondition, "condition", "", "filter by condition")
	ListCmd.Flags().StringVar(&listLocation, "location", "", "filter by location")
	ListCmd.Flags().StringVarP(&listQuery, "query", "q", "", "free-text search")
}

package item

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"rewear/cmd/client/cmd/types"
	"rewear/internal/app/client"
)

var getJSON bool

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one listing",
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

		it, err := app.GetItem(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch item: %w", err)
		}

		if getJSON {
			return json.NewEncoder(os.Stdout).Encode(it)
		}

		fmt.Printf("#%d %s [%s]\n", it.ID, it.Title, it.Status)
		if it.Description != "" {
			fmt.Printf("  %s\n", it.Description)
		}
		fmt.Printf("  category:  %s\n", it.Category)
		fmt.Printf("  size:      %s\n", it.Size)
		fmt.Printf("  condition: %s\n", it.Condition)
		fmt.Printf("  points:    %d\n", it.Points)
		if it.Location != "" {
			fmt.Printf("  location:  %s\n", it.Location)
		}
		if it.IsFavorite {
			fmt.Println("  bookmarked as favorite")
		}

		return nil
	},
}

func init() {
	GetCmd.Flags().BoolVar(&getJSON, "json", false, "print as JSON")
}

package auth

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

var whoamiJSON bool

var WhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.RefreshUser(ctx); err != nil {
			return fmt.Errorf("failed to fetch profile: %w", err)
		}

		u := app.Snapshot().User
		if u == nil {
			return fmt.Errorf("no active session")
		}

		if whoamiJSON {
			return json.NewEncoder(os.Stdout).Encode(u)
		}

		fmt.Printf("%s <%s>\n", u.Name, u.Email)
		fmt.Printf("  points:          %d\n", u.Points)
		fmt.Printf("  rating:          %.1f\n", u.Rating)
		fmt.Printf("  swaps completed: %d\n", u.SwapsCompleted)
		fmt.Printf("  items listed:    %d\n", u.ItemsListed)
		fmt.Printf("  impact score:    %d\n", u.ImpactScore)
		if u.IsAdmin {
			fmt.Println("  role:            admin")
		}

		return nil
	},
}

func init() {
	WhoamiCmd.Flags().BoolVar(&whoamiJSON, "json", false, "print as JSON")
}

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
)

var usersJSON bool

var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List platform accounts",
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

		users, err := app.AdminUsers(ctx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		if usersJSON {
			return json.NewEncoder(os.Stdout).Encode(users)
		}

		if len(users) == 0 {
			fmt.Println("No users")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tNAME\tPOINTS\tADMIN")
		for _, u := range users {
			adminFlag := ""
			if u.IsAdmin {
				adminFlag = "yes"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", u.ID, u.Email, u.Name, u.Points, adminFlag)
		}
		return w.Flush()
	},
}

func init() {
	UsersCmd.Flags().BoolVar(&usersJSON, "json", false, "print as JSON")
}

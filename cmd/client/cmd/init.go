// cmd/client/cmd/init.go
package cmd

import (
	"fmt"

	"rewear/cmd/client/cmd/admin"
	"rewear/cmd/client/cmd/auth"
	"rewear/cmd/client/cmd/call"
	"rewear/cmd/client/cmd/item"
	"rewear/cmd/client/cmd/swap"
	"rewear/cmd/client/cmd/types"
	"rewear/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and server status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		if app.IsAuthenticated() {
			fmt.Printf("Session: %s\n", color.GreenString("authenticated"))
		} else {
			fmt.Printf("Session: %s\n", color.YellowString("not logged in"))
		}

		if err := app.CheckConnection(cmd.Context()); err != nil {
			fmt.Printf("Server:  %s (%v)\n", color.RedString("unreachable"), err)
		} else {
			fmt.Printf("Server:  %s\n", color.GreenString("healthy"))
		}

		snap := app.Snapshot()
		fmt.Printf("Favorites: %d bookmarked\n", len(snap.Favorites))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.WhoamiCmd)

	rootCmd.AddCommand(item.ItemCmd)
	item.ItemCmd.AddCommand(item.ListCmd)
	item.ItemCmd.AddCommand(item.GetCmd)
	item.ItemCmd.AddCommand(item.CreateCmd)
	item.ItemCmd.AddCommand(item.UpdateCmd)
	item.ItemCmd.AddCommand(item.DeleteCmd)
	item.ItemCmd.AddCommand(item.FavoriteCmd)

	rootCmd.AddCommand(swap.SwapCmd)
	swap.SwapCmd.AddCommand(swap.ListCmd)
	swap.SwapCmd.AddCommand(swap.RequestCmd)
	swap.SwapCmd.AddCommand(swap.AcceptCmd)
	swap.SwapCmd.AddCommand(swap.RejectCmd)
	swap.SwapCmd.AddCommand(swap.CompleteCmd)
	swap.SwapCmd.AddCommand(swap.HistoryCmd)

	rootCmd.AddCommand(admin.AdminCmd)
	admin.AdminCmd.AddCommand(admin.StatsCmd)
	admin.AdminCmd.AddCommand(admin.ItemsCmd)
	admin.AdminCmd.AddCommand(admin.ApproveCmd)
	admin.AdminCmd.AddCommand(admin.RejectCmd)
	admin.AdminCmd.AddCommand(admin.DeleteCmd)
	admin.AdminCmd.AddCommand(admin.UsersCmd)

	rootCmd.AddCommand(call.CallCmd)
	call.CallCmd.AddCommand(call.MakeCmd)
	call.CallCmd.AddCommand(call.HealthCmd)
}

// cmd/client/cmd/auth/login.go
package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rewear/cmd/client/cmd/types"
	"rewear/internal/app/client"
	"rewear/internal/domain/user"
)

var LoginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in to the ReWear server",
	Long: `Authenticate against the ReWear server.

The bearer token is stored locally for subsequent commands. Login does
not return profile data; the client fetches it in a follow-up request.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		var email string
		if len(args) > 0 {
			email = args[0]
		} else {
			fmt.Print("Email: ")
			_, _ = fmt.Scanln(&email)
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Login(ctx, user.LoginRequest{
			Email:    email,
			Password: string(password),
		}); err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}

		snap := app.Snapshot()
		fmt.Println()
		fmt.Println(color.GreenString("Logged in successfully."))
		if snap.User != nil {
			fmt.Printf("Welcome back, %s (%d points)\n", snap.User.Name, snap.User.Points)
		}

		return nil
	},
}

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

var (
	registerName     string
	registerLocation string
)

var RegisterCmd = &cobra.Command{
	Use:   "register [email]",
	Short: "Create a ReWear account",
	Args:  cobra.MaximumNArgs(1),
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

		if registerName == "" {
			fmt.Print("Name: ")
			_, _ = fmt.Scanln(&registerName)
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		fmt.Print("Repeat password: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("passwords do not match")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		created, err := app.Register(ctx, user.RegisterRequest{
			Email:    email,
			Password: string(password),
			Name:     registerName,
			Location: registerLocation,
		})
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Println()
		fmt.Println(color.GreenString("Account created."))
		fmt.Printf("Welcome, %s! Log in with: rewear auth login %s\n", created.Name, created.Email)

		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVar(&registerName, "name", "", "display name")
	RegisterCmd.Flags().StringVar(&registerLocation, "location", "", "home location")
}

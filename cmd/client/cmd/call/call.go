package call

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rewear/cmd/client/cmd/types"
	"rewear/internal/app/client"
)

var CallCmd = &cobra.Command{
	Use:   "call",
	Short: "Voice-bot side channel",
}

var MakeCmd = &cobra.Command{
	Use:   "make",
	Short: "Trigger an outbound bot call",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := app.MakeCall(ctx)
		if err != nil {
			return fmt.Errorf("failed to trigger call: %w", err)
		}

		if result.Success {
			fmt.Println(color.GreenString(result.Message))
		} else {
			fmt.Println(result.Message)
		}
		if result.CallSID != "" {
			fmt.Printf("call sid: %s\n", result.CallSID)
		}
		return nil
	},
}

var HealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe the call service health endpoint",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		status, err := app.CallHealth(ctx)
		if err != nil {
			return fmt.Errorf("health probe failed: %w", err)
		}

		fmt.Printf("status: %s\n", status)
		return nil
	},
}

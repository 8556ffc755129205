// cmd/client/cmd/swap/list.go
package swap

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
	"rewear/internal/domain/swap"
)

var listJSON bool

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your swap requests",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.LoadSwaps(ctx); err != nil {
			return fmt.Errorf("failed to load swaps: %w", err)
		}

		swaps := app.Snapshot().SwapRequests
		if listJSON {
			return json.NewEncoder(os.Stdout).Encode(swaps)
		}

		return printSwapsTable(swaps)
	},
}

func printSwapsTable(swaps []swap.Request) error {
	if len(swaps) == 0 {
		fmt.Println("No swap requests")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tITEM\tREQUESTER\tOWNER\tSTATUS\tMESSAGE")
	for _, sw := range swaps {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\t%s\n",
			sw.ID, sw.ItemID, sw.RequesterID, sw.OwnerID, colorStatus(sw.Status), sw.Message)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d request(s)\n", len(swaps))
	return nil
}

func colorStatus(s swap.Status) string {
	switch s {
	case swap.StatusAccepted, swap.StatusCompleted:
		return color.GreenString(string(s))
	case swap.StatusPending:
		return color.YellowString(string(s))
	case swap.StatusRejected:
		return color.RedString(string(s))
	default:
		return string(s)
	}
}

func init() {
	ListCmd.Flags().BoolVar(&listJSON, "json", false, "print as JSON")
}

package swap

import "github.com/spf13/cobra"

var SwapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Request and manage swaps",
}

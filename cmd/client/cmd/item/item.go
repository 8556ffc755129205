package item

import "github.com/spf13/cobra"

var ItemCmd = &cobra.Command{
	Use:   "item",
	Short: "Browse and manage listings",
}

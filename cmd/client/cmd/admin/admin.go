package admin

import "github.com/spf13/cobra"

var AdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Moderation commands (admin accounts only)",
	Long: `Moderate listings and inspect platform stats. These commands check the
session user's admin flag locally before issuing any request; the server
enforces authorization independently.`,
}

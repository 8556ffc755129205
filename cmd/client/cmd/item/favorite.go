package item

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rewear/cmd/client/cmd/types"
	"rewear/internal/app/client"
)

var FavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle an item in your local favorites",
	Long: `Bookmark or un-bookmark an item. Favorites live on this machine only;
they are never sent to the server. Toggling twice restores the original
state.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id: %s", args[0])
		}

		if app.ToggleFavorite(id) {
			fmt.Printf("Item #%d added to favorites\n", id)
		} else {
			fmt.Printf("Item #%d removed from favorites\n", id)
		}

		return nil
	},
}

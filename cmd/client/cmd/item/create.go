// cmd/client/cmd/item/create.go
package item

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rewear/cmd/client/cmd/types"
	"rewear/internal/app/client"
	"rewear/internal/domain/item"
)

var (
	createDescription string
	createCategory    string
	createType        string
	createSize        string
	createCondition   string
	createTags        string
	createLocation    string
	createPoints      int
)

var CreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "List a new garment",
	Long: fmt.Sprintf(`Create a listing. The title is required; everything else is optional.

Known categories: %s
Known conditions: %s`,
		strings.Join(item.Categories, ", "),
		strings.Join(item.Conditions, ", ")),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		if !app.IsAuthenticated() {
			return fmt.Errorf("you must be logged in to list an item, run: rewear auth login")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		created, err := app.CreateItem(ctx, item.CreateRequest{
			Title:       args[0],
			Description: createDescription,
			Category:    createCategory,
			Type:        createType,
			Size:        createSize,
			Condition:   createCondition,
			Tags:        createTags,
			Location:    createLocation,
			Points:      createPoints,
		})
		if err != nil {
			return fmt.Errorf("failed to create item: %w", err)
		}

		fmt.Println(color.GreenString("Item listed."))
		fmt.Printf("#%d %s (status: %s)\n", created.ID, created.Title, created.Status)
		if created.Status == item.StatusPending {
			fmt.Println("The listing awaits moderator approval before it appears in browse results.")
		}

		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVar(&createDescription, "description", "", "item description")
	CreateCmd.Flags().StringVar(&createCategory, "category", "", "category")
	CreateCmd.Flags().StringVar(&createType, "type", "", "garment type")
	CreateCmd.Flags().StringVar(&createSize, "size", "", "size")
	CreateCmd.Flags().StringVar(&createCondition, "condition", "", "condition")
	CreateCmd.Flags().StringVar(&createTags, "tags", "", "comma-separated tags")
	CreateCmd.Flags().StringVar(&createLocation, "location", "", "item location")
	CreateCmd.Flags().IntVar(&createPoints, "points", 0, "point value")
}

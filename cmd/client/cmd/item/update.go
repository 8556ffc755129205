package item

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"rewear/cmd/client/cmd/types"
	"rewear/internal/app/client"
	"rewear/internal/domain/item"
)

var (
	updateTitle       string
	updateDescription string
	updateCategory    string
	updateSize        string
	updateCondition   string
	updatePoints      int
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update one of your listings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if app == nil {
			return fmt.Errorf("application is not initialized")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item id: %s", args[0])
		}

		var req item.UpdateRequest
		if cmd.Flags().Changed("title") {
			req.Title = &updateTitle
		}
		if cmd.Flags().Changed("description") {
			req.Description = &updateDescription
		}
		if cmd.Flags().Changed("category") {
			req.Category = &updateCategory
		}
		if cmd.Flags().Changed("size") {
			req.Size = &updateSize
		}
		if cmd.Flags().Changed("condition") {
			req.Condition = &updateCondition
		}
		if cmd.Flags().Changed("points") {
			req.Points = &updatePoints
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		updated, err := app.UpdateItem(ctx, id, req)
		if err != nil {
			return fmt.Errorf("failed to update item: %w", err)
		}

		fmt.Printf("Updated #%d %s\n", updated.ID, updated.Title)
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	UpdateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
	UpdateCmd.Flags().StringVar(&updateCategory, "category", "", "new category")
	UpdateCmd.Flags().StringVar(&updateSize, "size", "", "new size")
	UpdateCmd.Flags().StringVar(&updateCondition, "condition", "", "new condition")
	UpdateCmd.Flags().IntVar(&updatePoints, "points", 0, "new point value")
}

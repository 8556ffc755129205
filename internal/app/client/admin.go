package client

import (
	"context"

	"rewear/internal/domain/admin"
	"rewear/internal/domain/item"
	"rewear/internal/domain/user"
)

// Moderation actions. All are guarded client-side on the session user's
// role flag; the backend still enforces authorization on its end.

func (a *App) AdminStats(ctx context.Context) (*admin.Stats, error) {
	var stats *admin.Stats
	err := a.runSync(ctx, "admin stats", func(ctx context.Context) error {
		if err := a.requireAdmin(); err != nil {
			return err
		}

		s, err := a.api.AdminStats(ctx)
		if err != nil {
			return err
		}
		stats = s
		return nil
	})
	return stats, err
}

func (a *App) AdminItems(ctx context.Context) ([]item.Item, error) {
	var items []item.Item
	err := a.runSync(ctx, "admin items", func(ctx context.Context) error {
		if err := a.requireAdmin(); err != nil {
			return err
		}

		list, err := a.api.AdminItems(ctx)
		if err != nil {
			return err
		}
		items = list
		return nil
	})
	return items, err
}

func (a *App) AdminPendingItems(ctx context.Context) ([]item.Item, error) {
	var items []item.Item
	err := a.runSync(ctx, "admin pending items", func(ctx context.Context) error {
		if err := a.requireAdmin(); err != nil {
			return err
		}

		list, err := a.api.AdminPendingItems(ctx)
		if err != nil {
			return err
		}
		items = list
		return nil
	})
	return items, err
}

func (a *App) AdminItemsByStatus(ctx context.Context, status item.Status) ([]item.Item, error) {
	var items []item.Item
	err := a.runSync(ctx, "admin items by status", func(ctx context.Context) error {
		if err := a.requireAdmin(); err != nil {
			return err
		}

		list, err := a.api.AdminItemsByStatus(ctx, status)
		if err != nil {
			return err
		}
		items = list
		return nil
	})
	return items, err
}

// AdminApproveItem moves a pending listing to available and mirrors the
// server's copy into the local list.
func (a *App) AdminApproveItem(ctx context.Context, id int64) (*item.Item, error) {
	var approved *item.Item
	err := a.runSync(ctx, "approve item", func(ctx context.Context) error {
		if err := a.requireAdmin(); err != nil {
			return err
		}

		it, err := a.api.AdminApproveItem(ctx, id)
		if err != nil {
			return err
		}

		a.store.Dispatch(Action{Type: ActionUpdateItem, Item: it})
		approved = it
		return nil
	})
	return approved, err
}

func (a *App) AdminRejectItem(ctx context.Context, id int64) (*item.Item, error) {
	var rejected *item.Item
	err := a.runSync(ctx, "reject item", func(ctx context.Context) error {
		if err := a.requireAdmin(); err != nil {
			return err
		}

		it, err := a.api.AdminRejectItem(ctx, id)
		if err != nil {
			return err
		}

		a.store.Dispatch(Action{Type: ActionUpdateItem, Item: it})
		rejected = it
		return nil
	})
	return rejected, err
}

func (a *App) AdminDeleteItem(ctx context.Context, id int64) error {
	return a.runSync(ctx, "admin delete item", func(ctx context.Context) error {
		if err := a.requireAdmin(); err != nil {
			return err
		}

		if err := a.api.AdminDeleteItem(ctx, id); err != nil {
			return err
		}

		a.store.Dispatch(Action{Type: ActionDeleteItem, ItemID: id})
		return nil
	})
}

func (a *App) AdminUsers(ctx context.Context) ([]user.User, error) {
	var users []user.User
	err := a.runSync(ctx, "admin users", func(ctx context.Context) error {
		if err := a.requireAdmin(); err != nil {
			return err
		}

		list, err := a.api.AdminUsers(ctx)
		if err != nil {
			return err
		}
		users = list
		return nil
	})
	return users, err
}

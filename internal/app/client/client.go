package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	gosync "sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slog"

	"rewear/internal/app/client/config"
	"rewear/internal/domain/apperr"
	"rewear/internal/domain/item"
	"rewear/internal/domain/swap"
	"rewear/internal/domain/user"
)

// App wires the API client, the state store and the local favorites
// storage together. Every data-sync action follows the same shape: set
// loading, call the resource client, commit on success or store the
// error, clear loading in a deferred step.
type App struct {
	config    *config.Config
	log       *slog.Logger
	api       *httpClient
	store     *Store
	favorites FavoritesStore
	validate  *validator.Validate

	mu            gosync.RWMutex
	authenticated bool
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	api := newHTTPClient(cfg, log)

	var favorites FavoritesStore
	sqliteFavorites, err := NewSQLiteFavorites(cfg.FavoritesPath)
	if err != nil {
		log.Warn("failed to open favorites database, falling back to memory", "error", err)
		favorites = NewMemoryFavorites()
	} else {
		favorites = sqliteFavorites
	}

	app := &App{
		config:    cfg,
		log:       log,
		api:       api,
		store:     NewStore(),
		favorites: favorites,
		validate:  validator.New(),
	}

	app.seedFavorites()

	if token, err := app.Token(); err == nil && token != "" {
		api.SetToken(token)
		app.mu.Lock()
		app.authenticated = true
		app.mu.Unlock()
		log.Debug("token loaded from file")
	}

	return app, nil
}

// seedFavorites replays the persisted favorites into the fresh store.
func (a *App) seedFavorites() {
	ids, err := a.favorites.List()
	if err != nil {
		a.log.Warn("failed to load favorites", "error", err)
		return
	}
	for _, id := range ids {
		a.store.Dispatch(Action{Type: ActionToggleFavorite, ItemID: id})
	}
}

// Store exposes the state store so views can subscribe and snapshot.
func (a *App) Store() *Store {
	return a.store
}

// Snapshot is shorthand for Store().Snapshot().
func (a *App) Snapshot() State {
	return a.store.Snapshot()
}

func (a *App) Close() error {
	return a.favorites.Close()
}

// CheckConnection probes the backend's health endpoint.
func (a *App) CheckConnection(ctx context.Context) error {
	_, err := a.api.CallHealth(ctx)
	return err
}

// ==================== Session ====================

// IsAuthenticated reports whether a bearer token is held.
func (a *App) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.authenticated {
		if token, err := a.readTokenFile(); err == nil && token != "" {
			a.api.SetToken(token)
			a.authenticated = true
		}
	}

	return a.authenticated
}

// Token returns the stored bearer token.
func (a *App) Token() (string, error) {
	return a.readTokenFile()
}

func (a *App) readTokenFile() (string, error) {
	tokenBytes, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("token not found, run: rewear auth login")
		}
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return string(tokenBytes), nil
}

// SaveToken persists the token and installs it on the API client.
func (a *App) SaveToken(token string) error {
	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	a.api.SetToken(token)

	return nil
}

// ClearToken removes the token file and clears the in-flight token.
func (a *App) ClearToken() error {
	a.mu.Lock()
	a.authenticated = false
	a.mu.Unlock()

	a.api.ClearToken()

	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token: %w", err)
	}

	return nil
}

// Login exchanges credentials for a token, persists it, then fetches the
// profile in a second request since the login endpoint returns no
// profile data.
func (a *App) Login(ctx context.Context, req user.LoginRequest) error {
	return a.runSync(ctx, "login", func(ctx context.Context) error {
		if err := a.validateStruct(req); err != nil {
			return err
		}

		token, err := a.api.Login(ctx, req.Email, req.Password)
		if err != nil {
			return err
		}

		if err := a.SaveToken(token); err != nil {
			return err
		}

		a.mu.Lock()
		a.authenticated = true
		a.mu.Unlock()

		me, err := a.api.Me(ctx)
		if err != nil {
			return err
		}
		a.store.Dispatch(Action{Type: ActionSetUser, User: me})

		a.log.Info("logged in", "email", req.Email)
		return nil
	})
}

func (a *App) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	var created *user.User
	err := a.runSync(ctx, "register", func(ctx context.Context) error {
		if err := a.validateStruct(req); err != nil {
			return err
		}

		u, err := a.api.Register(ctx, req)
		if err != nil {
			return err
		}
		created = u

		a.log.Info("account registered", "email", req.Email)
		return nil
	})
	return created, err
}

// Logout clears the session token and the session user. Loaded items,
// swaps and favorites survive; the store is only fully torn down when
// the process exits.
func (a *App) Logout() error {
	if err := a.ClearToken(); err != nil {
		return err
	}

	a.store.Dispatch(Action{Type: ActionSetUser, User: nil})
	a.log.Info("logged out")
	return nil
}

// RefreshUser re-fetches the authenticated profile and replaces the
// session user wholesale. Called after operations with server-side
// effects on the user entity.
func (a *App) RefreshUser(ctx context.Context) error {
	return a.runSync(ctx, "refresh user", func(ctx context.Context) error {
		if err := a.requireAuth(); err != nil {
			return err
		}

		me, err := a.api.Me(ctx)
		if err != nil {
			return err
		}

		a.store.Dispatch(Action{Type: ActionSetUser, User: me})
		return nil
	})
}

// ==================== Items ====================

// LoadItems fetches a page of listings and overlays each item's favorite
// flag from the local favorites set.
func (a *App) LoadItems(ctx context.Context, skip, limit int) error {
	return a.runSync(ctx, "load items", func(ctx context.Context) error {
		items, err := a.api.GetItems(ctx, skip, limit)
		if err != nil {
			return err
		}

		favorites := a.store.Snapshot().Favorites
		for i := range items {
			_, items[i].IsFavorite = favorites[items[i].ID]
		}

		a.store.Dispatch(Action{Type: ActionSetItems, Items: items})
		return nil
	})
}

// GetItem fetches one listing and merges it into the store.
func (a *App) GetItem(ctx context.Context, id int64) (*item.Item, error) {
	var fetched *item.Item
	err := a.runSync(ctx, "get item", func(ctx context.Context) error {
		it, err := a.api.GetItem(ctx, id)
		if err != nil {
			return err
		}

		_, it.IsFavorite = a.store.Snapshot().Favorites[it.ID]
		a.store.Dispatch(Action{Type: ActionAddItem, Item: it})
		fetched = it
		return nil
	})
	return fetched, err
}

// CreateItem posts a new listing and appends the server's copy to the
// local list without refetching. The new item is never a favorite,
// whatever the favorites set holds.
func (a *App) CreateItem(ctx context.Context, req item.CreateRequest) (*item.Item, error) {
	var created *item.Item
	err := a.runSync(ctx, "create item", func(ctx context.Context) error {
		if err := a.requireAuth(); err != nil {
			return err
		}
		if err := a.validateStruct(req); err != nil {
			return err
		}

		it, err := a.api.CreateItem(ctx, req)
		if err != nil {
			return err
		}

		it.IsFavorite = false
		a.store.Dispatch(Action{Type: ActionAddItem, Item: it})
		created = it
		return nil
	})
	return created, err
}

func (a *App) UpdateItem(ctx context.Context, id int64, req item.UpdateRequest) (*item.Item, error) {
	var updated *item.Item
	err := a.runSync(ctx, "update item", func(ctx context.Context) error {
		if err := a.requireAuth(); err != nil {
			return err
		}

		it, err := a.api.UpdateItem(ctx, id, req)
		if err != nil {
			return err
		}

		_, it.IsFavorite = a.store.Snapshot().Favorites[it.ID]
		a.store.Dispatch(Action{Type: ActionUpdateItem, Item: it})
		updated = it
		return nil
	})
	return updated, err
}

func (a *App) DeleteItem(ctx context.Context, id int64) error {
	return a.runSync(ctx, "delete item", func(ctx context.Context) error {
		if err := a.requireAuth(); err != nil {
			return err
		}

		if err := a.api.DeleteItem(ctx, id); err != nil {
			return err
		}

		a.store.Dispatch(Action{Type: ActionDeleteItem, ItemID: id})
		return nil
	})
}

// ToggleFavorite flips local membership for the item id and persists the
// new set. The store commit happens first; a persistence failure is
// logged, not rolled back.
func (a *App) ToggleFavorite(itemID int64) bool {
	a.store.Dispatch(Action{Type: ActionToggleFavorite, ItemID: itemID})

	_, member := a.store.Snapshot().Favorites[itemID]
	var err error
	if member {
		err = a.favorites.Add(itemID)
	} else {
		err = a.favorites.Remove(itemID)
	}
	if err != nil {
		a.log.Warn("failed to persist favorite", "item_id", itemID, "error", err)
	}

	return member
}

// SetSearchFilters merges a partial filter update into the browse
// filters.
func (a *App) SetSearchFilters(u item.FilterUpdate) {
	a.store.Dispatch(Action{Type: ActionSetFilters, Filters: u})
}

// FilteredItems returns the loaded items passing the active filters.
func (a *App) FilteredItems() []item.Item {
	snap := a.store.Snapshot()
	if snap.SearchFilters.IsZero() {
		return snap.Items
	}

	out := make([]item.Item, 0, len(snap.Items))
	for _, it := range snap.Items {
		if snap.SearchFilters.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

// ==================== Swaps ====================

func (a *App) LoadSwaps(ctx context.Context) error {
	return a.runSync(ctx, "load swaps", func(ctx context.Context) error {
		if err := a.requireAuth(); err != nil {
			return err
		}

		swaps, err := a.api.GetSwaps(ctx)
		if err != nil {
			return err
		}

		a.store.Dispatch(Action{Type: ActionSetSwaps, Swaps: swaps})
		return nil
	})
}

// SwapHistory returns completed and rejected swaps without touching the
// active swap list.
func (a *App) SwapHistory(ctx context.Context) ([]swap.Request, error) {
	var history []swap.Request
	err := a.runSync(ctx, "swap history", func(ctx context.Context) error {
		if err := a.requireAuth(); err != nil {
			return err
		}

		swaps, err := a.api.GetSwapHistory(ctx)
		if err != nil {
			return err
		}
		history = swaps
		return nil
	})
	return history, err
}

func (a *App) CreateSwap(ctx context.Context, req swap.CreateRequest) (*swap.Request, error) {
	var created *swap.Request
	err := a.runSync(ctx, "create swap", func(ctx context.Context) error {
		if err := a.requireAuth(); err != nil {
			return err
		}
		if err := a.validateStruct(req); err != nil {
			return err
		}

		sw, err := a.api.CreateSwap(ctx, req)
		if err != nil {
			return err
		}

		a.store.Dispatch(Action{Type: ActionAddSwap, Swap: sw})
		created = sw
		return nil
	})
	return created, err
}

// AcceptSwap marks the swap accepted and then refreshes the session user
// once, since acceptance changes points, rating and swap count on the
// server.
func (a *App) AcceptSwap(ctx context.Context, id int64) error {
	return a.runSync(ctx, "accept swap", func(ctx context.Context) error {
		if err := a.requireAuth(); err != nil {
			return err
		}

		sw, err := a.updateSwapStatus(ctx, id, swap.StatusAccepted)
		if err != nil {
			return err
		}
		a.store.Dispatch(Action{Type: ActionAddSwap, Swap: sw})

		me, err := a.api.Me(ctx)
		if err != nil {
			a.log.Warn("swap accepted but profile refresh failed", "swap_id", id, "error", err)
			return nil
		}
		a.store.Dispatch(Action{Type: ActionSetUser, User: me})
		return nil
	})
}

func (a *App) RejectSwap(ctx context.Context, id int64) error {
	return a.runSync(ctx, "reject swap", func(ctx context.Context) error {
		if err := a.requireAuth(); err != nil {
			return err
		}

		sw, err := a.updateSwapStatus(ctx, id, swap.StatusRejected)
		if err != nil {
			return err
		}
		a.store.Dispatch(Action{Type: ActionAddSwap, Swap: sw})
		return nil
	})
}

func (a *App) CompleteSwap(ctx context.Context, id int64) error {
	return a.runSync(ctx, "complete swap", func(ctx context.Context) error {
		if err := a.requireAuth(); err != nil {
			return err
		}

		sw, err := a.updateSwapStatus(ctx, id, swap.StatusCompleted)
		if err != nil {
			return err
		}
		a.store.Dispatch(Action{Type: ActionAddSwap, Swap: sw})
		return nil
	})
}

func (a *App) updateSwapStatus(ctx context.Context, id int64, status swap.Status) (*swap.Request, error) {
	return a.api.UpdateSwap(ctx, id, swap.UpdateRequest{Status: &status})
}

// ==================== Side channel ====================

func (a *App) MakeCall(ctx context.Context) (*CallResult, error) {
	var result *CallResult
	err := a.runSync(ctx, "make call", func(ctx context.Context) error {
		r, err := a.api.MakeCall(ctx)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	return result, err
}

func (a *App) CallHealth(ctx context.Context) (string, error) {
	return a.api.CallHealth(ctx)
}

// ==================== Helpers ====================

// runSync is the common data-sync envelope: loading on, stale error
// cleared, the resource call, error capture, loading off in a deferred
// step whatever happened.
func (a *App) runSync(ctx context.Context, name string, fn func(context.Context) error) error {
	a.store.Dispatch(Action{Type: ActionSetLoading, Loading: true})
	a.store.Dispatch(Action{Type: ActionSetError, Error: ""})
	defer a.store.Dispatch(Action{Type: ActionSetLoading, Loading: false})

	if err := fn(ctx); err != nil {
		a.log.Error("action failed", "action", name, "error", err)
		a.store.Dispatch(Action{Type: ActionSetError, Error: err.Error()})
		return err
	}

	return nil
}

func (a *App) requireAuth() error {
	if !a.IsAuthenticated() {
		return apperr.Wrap(apperr.KindAuthorization,
			"authentication required, run: rewear auth login", user.ErrNotAuthenticated)
	}
	return nil
}

// requireAdmin guards moderation actions on the session user's role flag;
// no server round trip happens for the check itself.
func (a *App) requireAdmin() error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	snap := a.store.Snapshot()
	if snap.User == nil || !snap.User.IsAdmin {
		return apperr.Wrap(apperr.KindAuthorization,
			"admin privileges required", user.ErrNotAdmin)
	}
	return nil
}

func (a *App) validateStruct(v interface{}) error {
	if err := a.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return apperr.Newf(apperr.KindValidation,
				"field %s failed validation on %s", first.Field(), first.Tag())
		}
		return apperr.Wrap(apperr.KindValidation, "invalid input", err)
	}
	return nil
}

package client

import (
	gosync "sync"

	"rewear/internal/domain/item"
	"rewear/internal/domain/swap"
	"rewear/internal/domain/user"
)

// State is the single client-side snapshot: session user, entity lists,
// UI filters and the advisory loading/error flags. The store exclusively
// owns the collections; callers get copies and dispatch intents.
type State struct {
	User          *user.User
	Items         []item.Item
	SwapRequests  []swap.Request
	Favorites     map[int64]struct{}
	SearchFilters item.Filters
	Loading       bool
	Error         string
}

// ActionType tags a store action.
type ActionType string

const (
	ActionSetUser        ActionType = "SET_USER"
	ActionSetItems       ActionType = "SET_ITEMS"
	ActionAddItem        ActionType = "ADD_ITEM"
	ActionUpdateItem     ActionType = "UPDATE_ITEM"
	ActionDeleteItem     ActionType = "DELETE_ITEM"
	ActionSetSwaps       ActionType = "SET_SWAP_REQUESTS"
	ActionAddSwap        ActionType = "ADD_SWAP_REQUEST"
	ActionUpdateSwap     ActionType = "UPDATE_SWAP_REQUEST"
	ActionToggleFavorite ActionType = "TOGGLE_FAVORITE"
	ActionSetFilters     ActionType = "SET_SEARCH_FILTERS"
	ActionSetLoading     ActionType = "SET_LOADING"
	ActionSetError       ActionType = "SET_ERROR"
)

// Action is a store intent. Only the fields relevant to Type are read.
type Action struct {
	Type    ActionType
	User    *user.User
	Items   []item.Item
	Item    *item.Item
	ItemID  int64
	Swaps   []swap.Request
	Swap    *swap.Request
	SwapID  int64
	Filters item.FilterUpdate
	Loading bool
	Error   string
}

// reduce is the pure, total transition function. Unknown action types
// return the state unchanged.
func reduce(s State, a Action) State {
	switch a.Type {
	case ActionSetUser:
		s.User = a.User
	case ActionSetItems:
		s.Items = append([]item.Item(nil), a.Items...)
	case ActionAddItem:
		if a.Item == nil {
			return s
		}
		items := append([]item.Item(nil), s.Items...)
		replaced := false
		for i := range items {
			if items[i].ID == a.Item.ID {
				items[i] = *a.Item
				replaced = true
				break
			}
		}
		if !replaced {
			items = append(items, *a.Item)
		}
		s.Items = items
	case ActionUpdateItem:
		if a.Item == nil {
			return s
		}
		s.Items = replaceItem(s.Items, *a.Item)
	case ActionDeleteItem:
		items := make([]item.Item, 0, len(s.Items))
		for _, it := range s.Items {
			if it.ID != a.ItemID {
				items = append(items, it)
			}
		}
		s.Items = items
	case ActionSetSwaps:
		s.SwapRequests = append([]swap.Request(nil), a.Swaps...)
	case ActionAddSwap:
		if a.Swap == nil {
			return s
		}
		swaps := append([]swap.Request(nil), s.SwapRequests...)
		replaced := false
		for i := range swaps {
			if swaps[i].ID == a.Swap.ID {
				swaps[i] = *a.Swap
				replaced = true
				break
			}
		}
		if !replaced {
			swaps = append(swaps, *a.Swap)
		}
		s.SwapRequests = swaps
	case ActionUpdateSwap:
		if a.Swap == nil {
			return s
		}
		s.SwapRequests = replaceSwap(s.SwapRequests, *a.Swap)
	case ActionToggleFavorite:
		favorites := copyFavorites(s.Favorites)
		if _, ok := favorites[a.ItemID]; ok {
			delete(favorites, a.ItemID)
		} else {
			favorites[a.ItemID] = struct{}{}
		}
		s.Favorites = favorites
		// Keep the overlaid flag consistent with the set.
		items := append([]item.Item(nil), s.Items...)
		for i := range items {
			if items[i].ID == a.ItemID {
				_, items[i].IsFavorite = favorites[a.ItemID]
			}
		}
		s.Items = items
	case ActionSetFilters:
		s.SearchFilters = s.SearchFilters.Merge(a.Filters)
	case ActionSetLoading:
		s.Loading = a.Loading
	case ActionSetError:
		s.Error = a.Error
	}
	return s
}

// replaceItem swaps in the entity matching by id. Absent id is a no-op,
// never an insert.
func replaceItem(items []item.Item, it item.Item) []item.Item {
	out := append([]item.Item(nil), items...)
	for i := range out {
		if out[i].ID == it.ID {
			out[i] = it
		}
	}
	return out
}

func replaceSwap(swaps []swap.Request, sw swap.Request) []swap.Request {
	out := append([]swap.Request(nil), swaps...)
	for i := range out {
		if out[i].ID == sw.ID {
			out[i] = sw
		}
	}
	return out
}

func copyFavorites(src map[int64]struct{}) map[int64]struct{} {
	dst := make(map[int64]struct{}, len(src)+1)
	for id := range src {
		dst[id] = struct{}{}
	}
	return dst
}

// Store serializes dispatches over the reducer and notifies subscribers
// with fresh snapshots. It is an explicit object so tests can hold
// isolated instances.
type Store struct {
	mu    gosync.RWMutex
	state State
	subs  map[int]func(State)
	nextS int
}

func NewStore() *Store {
	return &Store{
		state: State{
			Favorites: make(map[int64]struct{}),
		},
		subs: make(map[int]func(State)),
	}
}

// Dispatch applies the action and notifies subscribers. Overlapping async
// callers are serialized here; last write wins with no versioning, so two
// racing actions on the same entity resolve in arrival order.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	snapshot := s.snapshotLocked()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Snapshot returns a copy of the current state. Mutating the returned
// slices or map does not affect the store.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	snap := s.state
	snap.Items = append([]item.Item(nil), s.state.Items...)
	snap.SwapRequests = append([]swap.Request(nil), s.state.SwapRequests...)
	snap.Favorites = copyFavorites(s.state.Favorites)
	if s.state.User != nil {
		u := *s.state.User
		snap.User = &u
	}
	return snap
}

// Subscribe registers a listener called after every dispatch. The
// returned function removes it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextS
	s.nextS++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

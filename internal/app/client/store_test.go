package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rewear/internal/domain/item"
	"rewear/internal/domain/swap"
	"rewear/internal/domain/user"
)

func TestStore_SetUser(t *testing.T) {
	st := NewStore()
	st.Dispatch(Action{Type: ActionSetUser, User: &user.User{ID: 1, Email: "a@b.c"}})

	snap := st.Snapshot()
	require.NotNil(t, snap.User)
	assert.Equal(t, int64(1), snap.User.ID)

	st.Dispatch(Action{Type: ActionSetUser, User: nil})
	assert.Nil(t, st.Snapshot().User)
}

func TestStore_AddItem_DedupesByID(t *testing.T) {
	st := NewStore()
	st.Dispatch(Action{Type: ActionSetItems, Items: []item.Item{
		{ID: 1, Title: "Denim jacket"},
		{ID: 2, Title: "Wool scarf"},
	}})

	st.Dispatch(Action{Type: ActionAddItem, Item: &item.Item{ID: 2, Title: "Wool scarf (fixed)"}})
	snap := st.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "Wool scarf (fixed)", snap.Items[1].Title)

	st.Dispatch(Action{Type: ActionAddItem, Item: &item.Item{ID: 3, Title: "Sneakers"}})
	snap = st.Snapshot()
	require.Len(t, snap.Items, 3)
	assert.Equal(t, int64(3), snap.Items[2].ID)
}

func TestStore_UpdateItem_AbsentIDIsNoop(t *testing.T) {
	st := NewStore()
	st.Dispatch(Action{Type: ActionSetItems, Items: []item.Item{{ID: 1, Title: "Denim jacket"}}})

	st.Dispatch(Action{Type: ActionUpdateItem, Item: &item.Item{ID: 99, Title: "Ghost"}})
	snap := st.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "Denim jacket", snap.Items[0].Title)
}

func TestStore_DeleteItem(t *testing.T) {
	st := NewStore()
	st.Dispatch(Action{Type: ActionSetItems, Items: []item.Item{{ID: 1}, {ID: 2}}})

	st.Dispatch(Action{Type: ActionDeleteItem, ItemID: 1})
	snap := st.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(2), snap.Items[0].ID)

	// Deleting an id that is not present changes nothing
	st.Dispatch(Action{Type: ActionDeleteItem, ItemID: 42})
	assert.Len(t, st.Snapshot().Items, 1)
}

func TestStore_ToggleFavorite_PairRestoresState(t *testing.T) {
	st := NewStore()
	st.Dispatch(Action{Type: ActionSetItems, Items: []item.Item{{ID: 7, Title: "Boots"}}})

	st.Dispatch(Action{Type: ActionToggleFavorite, ItemID: 7})
	snap := st.Snapshot()
	assert.Contains(t, snap.Favorites, int64(7))
	assert.True(t, snap.Items[0].IsFavorite)

	st.Dispatch(Action{Type: ActionToggleFavorite, ItemID: 7})
	snap = st.Snapshot()
	assert.NotContains(t, snap.Favorites, int64(7))
	assert.False(t, snap.Items[0].IsFavorite)
}

func TestStore_ToggleFavorite_UnloadedItem(t *testing.T) {
	st := NewStore()

	// The id does not have to be in the loaded list
	st.Dispatch(Action{Type: ActionToggleFavorite, ItemID: 5})
	assert.Contains(t, st.Snapshot().Favorites, int64(5))
}

func TestStore_UpdateSwap_AbsentIDIsNoop(t *testing.T) {
	st := NewStore()
	st.Dispatch(Action{Type: ActionSetSwaps, Swaps: []swap.Request{{ID: 1, Status: swap.StatusPending}}})

	st.Dispatch(Action{Type: ActionUpdateSwap, Swap: &swap.Request{ID: 9, Status: swap.StatusAccepted}})
	snap := st.Snapshot()
	require.Len(t, snap.SwapRequests, 1)
	assert.Equal(t, swap.StatusPending, snap.SwapRequests[0].Status)
}

func TestStore_AddSwap_ReplacesExisting(t *testing.T) {
	st := NewStore()
	st.Dispatch(Action{Type: ActionSetSwaps, Swaps: []swap.Request{{ID: 1, Status: swap.StatusPending}}})

	st.Dispatch(Action{Type: ActionAddSwap, Swap: &swap.Request{ID: 1, Status: swap.StatusAccepted}})
	snap := st.Snapshot()
	require.Len(t, snap.SwapRequests, 1)
	assert.Equal(t, swap.StatusAccepted, snap.SwapRequests[0].Status)
}

func TestStore_SetFilters_PartialMerge(t *testing.T) {
	st := NewStore()

	cat := "outerwear"
	st.Dispatch(Action{Type: ActionSetFilters, Filters: item.FilterUpdate{Category: &cat}})

	q := "denim"
	st.Dispatch(Action{Type: ActionSetFilters, Filters: item.FilterUpdate{Query: &q}})

	snap := st.Snapshot()
	assert.Equal(t, "outerwear", snap.SearchFilters.Category)
	assert.Equal(t, "denim", snap.SearchFilters.Query)

	empty := ""
	st.Dispatch(Action{Type: ActionSetFilters, Filters: item.FilterUpdate{Category: &empty}})
	snap = st.Snapshot()
	assert.Equal(t, "", snap.SearchFilters.Category)
	assert.Equal(t, "denim", snap.SearchFilters.Query)
}

func TestStore_UnknownActionIsIdentity(t *testing.T) {
	st := NewStore()
	st.Dispatch(Action{Type: ActionSetItems, Items: []item.Item{{ID: 1}}})
	before := st.Snapshot()

	st.Dispatch(Action{Type: ActionType("SOMETHING_ELSE")})
	after := st.Snapshot()

	assert.Equal(t, before.Items, after.Items)
	assert.Equal(t, before.Favorites, after.Favorites)
}

func TestStore_SnapshotIsolation(t *testing.T) {
	st := NewStore()
	st.Dispatch(Action{Type: ActionSetItems, Items: []item.Item{{ID: 1, Title: "Denim jacket"}}})
	st.Dispatch(Action{Type: ActionToggleFavorite, ItemID: 1})
	st.Dispatch(Action{Type: ActionSetUser, User: &user.User{ID: 4, Name: "Dana"}})

	snap := st.Snapshot()
	snap.Items[0].Title = "mutated"
	snap.Favorites[99] = struct{}{}
	snap.User.Name = "mutated"

	fresh := st.Snapshot()
	assert.Equal(t, "Denim jacket", fresh.Items[0].Title)
	assert.NotContains(t, fresh.Favorites, int64(99))
	assert.Equal(t, "Dana", fresh.User.Name)
}

func TestStore_SubscribeAndUnsubscribe(t *testing.T) {
	st := NewStore()

	var seen []State
	unsub := st.Subscribe(func(s State) { seen = append(seen, s) })

	st.Dispatch(Action{Type: ActionSetLoading, Loading: true})
	require.Len(t, seen, 1)
	assert.True(t, seen[0].Loading)

	unsub()
	st.Dispatch(Action{Type: ActionSetLoading, Loading: false})
	assert.Len(t, seen, 1)
}

func TestStore_ErrorAndLoadingFlags(t *testing.T) {
	st := NewStore()

	st.Dispatch(Action{Type: ActionSetError, Error: "server is unreachable"})
	assert.Equal(t, "server is unreachable", st.Snapshot().Error)

	st.Dispatch(Action{Type: ActionSetError, Error: ""})
	assert.Empty(t, st.Snapshot().Error)
}

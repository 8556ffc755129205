package client

import gosync "sync"

// MemoryFavorites is the fallback store used when the sqlite database
// cannot be opened. Favorites then last only for the process lifetime.
type MemoryFavorites struct {
	mu  gosync.Mutex
	ids map[int64]struct{}
}

func NewMemoryFavorites() *MemoryFavorites {
	return &MemoryFavorites{
		ids: make(map[int64]struct{}),
	}
}

func (m *MemoryFavorites) Add(itemID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ids[itemID] = struct{}{}
	return nil
}

func (m *MemoryFavorites) Remove(itemID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.ids, itemID)
	return nil
}

func (m *MemoryFavorites) List() ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]int64, 0, len(m.ids))
	for id := range m.ids {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *MemoryFavorites) Close() error {
	return nil
}

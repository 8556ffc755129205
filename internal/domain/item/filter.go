package item

import "strings"

// Filters is the transient browse-view filter set. It is never persisted
// and never sent to the server; matching happens over the loaded list.
type Filters struct {
	Category  string
	Size      string
	Condition string
	Location  string
	Query     string
}

// FilterUpdate is a partial filter change. Nil fields leave the current
// value in place, so applying one is a shallow merge.
type FilterUpdate struct {
	Category  *string
	Size      *string
	Condition *string
	Location  *string
	Query     *string
}

// Merge returns f with the non-nil fields of u applied.
func (f Filters) Merge(u FilterUpdate) Filters {
	if u.Category != nil {
		f.Category = *u.Category
	}
	if u.Size != nil {
		f.Size = *u.Size
	}
	if u.Condition != nil {
		f.Condition = *u.Condition
	}
	if u.Location != nil {
		f.Location = *u.Location
	}
	if u.Query != nil {
		f.Query = *u.Query
	}
	return f
}

// IsZero reports whether no filter is active.
func (f Filters) IsZero() bool {
	return f == Filters{}
}

// Match reports whether it passes every active filter. Category, size and
// condition match exactly; location and the free-text query match as
// case-insensitive substrings over the searchable fields.
func (f Filters) Match(it Item) bool {
	if f.Category != "" && it.Category != f.Category {
		return false
	}
	if f.Size != "" && it.Size != f.Size {
		return false
	}
	if f.Condition != "" && it.Condition != f.Condition {
		return false
	}
	if f.Location != "" && !containsFold(it.Location, f.Location) {
		return false
	}
	if f.Query != "" {
		q := f.Query
		if !containsFold(it.Title, q) && !containsFold(it.Description, q) && !containsFold(it.Tags, q) {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

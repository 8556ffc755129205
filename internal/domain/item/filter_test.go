package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestFilters_Merge(t *testing.T) {
	f := Filters{Category: "outerwear", Query: "denim"}

	merged := f.Merge(FilterUpdate{Size: strPtr("M")})
	assert.Equal(t, Filters{Category: "outerwear", Size: "M", Query: "denim"}, merged)

	// A nil field leaves the old value, an empty string clears it
	merged = merged.Merge(FilterUpdate{Category: strPtr("")})
	assert.Equal(t, Filters{Size: "M", Query: "denim"}, merged)

	// The receiver is untouched
	assert.Equal(t, "outerwear", f.Category)
}

func TestFilters_IsZero(t *testing.T) {
	assert.True(t, Filters{}.IsZero())
	assert.False(t, Filters{Query: "x"}.IsZero())
}

func TestFilters_Match(t *testing.T) {
	it := Item{
		ID:          1,
		Title:       "Vintage Denim Jacket",
		Description: "Lightly worn, classic cut",
		Category:    "outerwear",
		Size:        "M",
		Condition:   "good",
		Tags:        "vintage, denim, blue",
		Location:    "Lisbon, Portugal",
	}

	tests := []struct {
		name string
		f    Filters
		want bool
	}{
		{"empty filters match everything", Filters{}, true},
		{"category exact", Filters{Category: "outerwear"}, true},
		{"category mismatch", Filters{Category: "tops"}, false},
		{"size exact", Filters{Size: "M"}, true},
		{"size mismatch", Filters{Size: "L"}, false},
		{"condition exact", Filters{Condition: "good"}, true},
		{"location substring case-insensitive", Filters{Location: "lisbon"}, true},
		{"location mismatch", Filters{Location: "Berlin"}, false},
		{"query hits title", Filters{Query: "denim"}, true},
		{"query hits description", Filters{Query: "classic cut"}, true},
		{"query hits tags", Filters{Query: "VINTAGE"}, true},
		{"query misses", Filters{Query: "leather"}, false},
		{"combined all pass", Filters{Category: "outerwear", Size: "M", Query: "jacket"}, true},
		{"combined one fails", Filters{Category: "outerwear", Size: "S"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Match(it))
		})
	}
}

package item

// CreateRequest posts a new listing. Category is free text; the published
// vocabularies in constants.go are hints for the UI, not constraints.
type CreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Type        string   `json:"type,omitempty"`
	Size        string   `json:"size,omitempty"`
	Condition   string   `json:"condition,omitempty"`
	Tags        string   `json:"tags,omitempty"`
	Images      []string `json:"images,omitempty"`
	Location    string   `json:"location,omitempty"`
	Points      int      `json:"points,omitempty" validate:"gte=0"`
}

// UpdateRequest carries a partial update; nil fields are left untouched
// by the backend.
type UpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Size        *string  `json:"size,omitempty"`
	Condition   *string  `json:"condition,omitempty"`
	Tags        *string  `json:"tags,omitempty"`
	Images      []string `json:"images,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Points      *int     `json:"points,omitempty"`
	Status      *Status  `json:"status,omitempty"`
}

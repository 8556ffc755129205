package item

// Status is the listing lifecycle state. Transitions happen server-side
// (moderation, swaps); the client only displays them.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusSwapped   Status = "swapped"
	StatusRejected  Status = "rejected"
)

// Item is a listed garment. IsFavorite is client-only state overlaid from
// the local favorites set and never sent to the server.
type Item struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Type        string   `json:"type,omitempty"`
	Size        string   `json:"size,omitempty"`
	Condition   string   `json:"condition,omitempty"`
	Tags        string   `json:"tags,omitempty"`
	Images      []string `json:"images,omitempty"`
	Location    string   `json:"location,omitempty"`
	Points      int      `json:"points,omitempty"`
	Status      Status   `json:"status"`
	OwnerID     int64    `json:"owner_id"`
	DateAdded   string   `json:"date_added"`

	IsFavorite bool `json:"-"`
}

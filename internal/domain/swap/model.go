package swap

// Status of a swap request. The client never enforces transitions; every
// status it holds came from an authoritative server response.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// Request is a proposal by one user to exchange value for another user's
// item.
type Request struct {
	ID          int64  `json:"id"`
	ItemID      int64  `json:"item_id"`
	RequesterID int64  `json:"requester_id"`
	OwnerID     int64  `json:"owner_id"`
	Status      Status `json:"status"`
	Message     string `json:"message,omitempty"`
	DateCreated string `json:"date_created"`
}

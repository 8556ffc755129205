package swap

// CreateRequest opens a swap request against another user's item.
type CreateRequest struct {
	ItemID      int64  `json:"item_id" validate:"required"`
	RequesterID int64  `json:"requester_id" validate:"required"`
	OwnerID     int64  `json:"owner_id" validate:"required"`
	Message     string `json:"message,omitempty"`
}

// UpdateRequest changes a swap's status or message.
type UpdateRequest struct {
	Status  *Status `json:"status,omitempty"`
	Message *string `json:"message,omitempty"`
}

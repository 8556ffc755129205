package admin

// Stats is the moderation dashboard summary.
type Stats struct {
	TotalItems    int `json:"total_items"`
	PendingItems  int `json:"pending_items"`
	ApprovedItems int `json:"approved_items"`
	RejectedItems int `json:"rejected_items"`
	TotalUsers    int `json:"total_users"`
	AdminUsers    int `json:"admin_users"`
}

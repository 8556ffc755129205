package user

// User is the client-side projection of the authenticated profile.
// The backend is authoritative; this copy exists only while a session
// is active and is replaced wholesale on refresh.
type User struct {
	ID             int64   `json:"id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Avatar         string  `json:"avatar,omitempty"`
	IsAdmin        bool    `json:"is_admin"`
	Points         int     `json:"points"`
	Rating         float64 `json:"rating"`
	SwapsCompleted int     `json:"swaps_completed"`
	ItemsListed    int     `json:"items_listed"`
	ImpactScore    int     `json:"impact_score"`
	JoinDate       string  `json:"join_date"`
	Location       string  `json:"location,omitempty"`
}

package user

// LoginRequest carries credentials for the form-encoded login endpoint.
// The backend expects the email under the OAuth2 "username" form field.
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Avatar   string `json:"avatar,omitempty"`
	Location string `json:"location,omitempty"`
}

// TokenResponse is the login endpoint's payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

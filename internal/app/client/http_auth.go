package client

import (
	"context"
	"net/url"

	"rewear/internal/domain/user"
)

// Login exchanges credentials for a bearer token. It does not fetch the
// profile; callers hit Me separately once the token is installed.
func (h *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var tokenResp user.TokenResponse
	if err := h.postForm(ctx, "/api/auth/login", form, &tokenResp); err != nil {
		return "", err
	}

	h.SetToken(tokenResp.AccessToken)
	return tokenResp.AccessToken, nil
}

func (h *httpClient) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	resp, err := h.doRequest(ctx, "POST", "/api/auth/register", req)
	if err != nil {
		return nil, err
	}

	var created user.User
	if err := h.parseResponse(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// Me fetches the authenticated profile.
func (h *httpClient) Me(ctx context.Context) (*user.User, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/auth/me", nil)
	if err != nil {
		return nil, err
	}

	var u user.User
	if err := h.parseResponse(resp, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

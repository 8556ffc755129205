package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"rewear/internal/app/client/config"
	"rewear/internal/domain/apperr"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "ReWear-Client/1.0",
	}
}

// SetToken installs the bearer token attached to every subsequent request.
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// ClearToken drops the bearer token.
func (h *httpClient) ClearToken() {
	h.token = ""
}

// Token returns the current bearer token, empty when unauthenticated.
func (h *httpClient) Token() string {
	return h.token
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNetwork, "server is unreachable", err)
	}

	return resp, nil
}

// parseResponse folds the body into result and converts non-2xx statuses
// into classified errors. The backend reports failures as {"detail": msg};
// a missing detail falls back to a generic description.
func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.Wrap(apperr.KindNetwork, "failed to read response", err)
	}

	h.log.Debug("received response",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode >= 400 {
		return h.errorFromStatus(resp.StatusCode, body)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return apperr.Wrap(apperr.KindServer, "failed to parse response", err)
		}
	}

	return nil
}

func (h *httpClient) errorFromStatus(status int, body []byte) error {
	message := fmt.Sprintf("server returned status %d", status)
	var errResp struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		message = errResp.Detail
	}

	kind := apperr.KindServer
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = apperr.KindAuthorization
	case status == http.StatusNotFound:
		kind = apperr.KindNotFound
	case status == http.StatusUnprocessableEntity || status == http.StatusBadRequest:
		kind = apperr.KindValidation
	}

	return apperr.New(kind, message)
}

// postForm is the login special case: credentials go form-encoded under
// the OAuth2 "username"/"password" fields, not as JSON.
func (h *httpClient) postForm(ctx context.Context, path string, form url.Values, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	h.log.Debug("sending form request", "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return apperr.Wrap(apperr.KindNetwork, "server is unreachable", err)
	}

	return h.parseResponse(resp, result)
}

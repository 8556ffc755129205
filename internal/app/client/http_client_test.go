package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"rewear/internal/app/client/config"
	"rewear/internal/domain/apperr"
)

func newTestHTTPClient(t *testing.T, serverURL string) *httpClient {
	t.Helper()
	cfg := &config.Config{
		ServerAddress: strings.TrimPrefix(serverURL, "http://"),
		TimeoutSec:    5,
	}
	return newHTTPClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHTTPClient_RequestHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	h := newTestHTTPClient(t, srv.URL)
	h.SetToken("tok-xyz")

	resp, err := h.doRequest(context.Background(), "GET", "/api/items", nil)
	require.NoError(t, err)
	require.NoError(t, h.parseResponse(resp, nil))

	assert.Equal(t, "Bearer tok-xyz", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Equal(t, "ReWear-Client/1.0", got.Get("User-Agent"))
	assert.NotEmpty(t, got.Get("X-Request-ID"))
}

func TestHTTPClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	h := newTestHTTPClient(t, srv.URL)

	resp, err := h.doRequest(context.Background(), "GET", "/api/items", nil)
	require.NoError(t, err)
	require.NoError(t, h.parseResponse(resp, nil))

	assert.Empty(t, got.Get("Authorization"))
}

func TestHTTPClient_ErrorDetailExtraction(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind apperr.Kind
		wantMsg  string
	}{
		{
			name:     "detail message",
			status:   http.StatusNotFound,
			body:     `{"detail": "Item not found"}`,
			wantKind: apperr.KindNotFound,
			wantMsg:  "Item not found",
		},
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"detail": "Not authenticated"}`,
			wantKind: apperr.KindAuthorization,
			wantMsg:  "Not authenticated",
		},
		{
			name:     "forbidden",
			status:   http.StatusForbidden,
			body:     `{"detail": "Admin access required"}`,
			wantKind: apperr.KindAuthorization,
			wantMsg:  "Admin access required",
		},
		{
			name:     "unprocessable",
			status:   http.StatusUnprocessableEntity,
			body:     `{"detail": "Invalid status"}`,
			wantKind: apperr.KindValidation,
			wantMsg:  "Invalid status",
		},
		{
			name:     "missing detail falls back",
			status:   http.StatusInternalServerError,
			body:     `<html>gateway error</html>`,
			wantKind: apperr.KindServer,
			wantMsg:  "server returned status 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			h := newTestHTTPClient(t, srv.URL)
			resp, err := h.doRequest(context.Background(), "GET", "/api/items", nil)
			require.NoError(t, err)

			err = h.parseResponse(resp, nil)
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, tt.wantKind))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestHTTPClient_PostFormContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ana@example.com", r.PostFormValue("username"))
		w.Write([]byte(`{"access_token": "t", "token_type": "bearer"}`))
	}))
	defer srv.Close()

	h := newTestHTTPClient(t, srv.URL)
	form := url.Values{}
	form.Set("username", "ana@example.com")
	form.Set("password", "secret")

	var result struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, h.postForm(context.Background(), "/api/auth/login", form, &result))
	assert.Equal(t, "t", result.AccessToken)
}

func TestHTTPClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	h := newTestHTTPClient(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.doRequest(ctx, "GET", "/api/items", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNetwork))
}

package client

import (
	"context"
	"fmt"

	"rewear/internal/domain/swap"
)

func (h *httpClient) GetSwaps(ctx context.Context) ([]swap.Request, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/swaps", nil)
	if err != nil {
		return nil, err
	}

	var swaps []swap.Request
	if err := h.parseResponse(resp, &swaps); err != nil {
		return nil, err
	}

	return swaps, nil
}

func (h *httpClient) GetSwap(ctx context.Context, id int64) (*swap.Request, error) {
	resp, err := h.doRequest(ctx, "GET", fmt.Sprintf("/api/swaps/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var sw swap.Request
	if err := h.parseResponse(resp, &sw); err != nil {
		return nil, err
	}

	return &sw, nil
}

// GetSwapHistory returns completed and rejected swaps for the session
// user.
func (h *httpClient) GetSwapHistory(ctx context.Context) ([]swap.Request, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/swaps/history", nil)
	if err != nil {
		return nil, err
	}

	var swaps []swap.Request
	if err := h.parseResponse(resp, &swaps); err != nil {
		return nil, err
	}

	return swaps, nil
}

func (h *httpClient) CreateSwap(ctx context.Context, req swap.CreateRequest) (*swap.Request, error) {
	resp, err := h.doRequest(ctx, "POST", "/api/swaps", req)
	if err != nil {
		return nil, err
	}

	var created swap.Request
	if err := h.parseResponse(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateSwap drives status transitions. The server is the state machine;
// whatever status it returns is what the client displays.
func (h *httpClient) UpdateSwap(ctx context.Context, id int64, req swap.UpdateRequest) (*swap.Request, error) {
	resp, err := h.doRequest(ctx, "PUT", fmt.Sprintf("/api/swaps/%d", id), req)
	if err != nil {
		return nil, err
	}

	var updated swap.Request
	if err := h.parseResponse(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

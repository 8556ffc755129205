package client

import (
	"context"
	"fmt"

	"rewear/internal/domain/admin"
	"rewear/internal/domain/item"
	"rewear/internal/domain/user"
)

func (h *httpClient) AdminStats(ctx context.Context) (*admin.Stats, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/admin/stats", nil)
	if err != nil {
		return nil, err
	}

	var stats admin.Stats
	if err := h.parseResponse(resp, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (h *httpClient) AdminItems(ctx context.Context) ([]item.Item, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/admin/items", nil)
	if err != nil {
		return nil, err
	}

	var items []item.Item
	if err := h.parseResponse(resp, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *httpClient) AdminPendingItems(ctx context.Context) ([]item.Item, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/admin/items/pending", nil)
	if err != nil {
		return nil, err
	}

	var items []item.Item
	if err := h.parseResponse(resp, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *httpClient) AdminItemsByStatus(ctx context.Context, status item.Status) ([]item.Item, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/admin/items/status/"+string(status), nil)
	if err != nil {
		return nil, err
	}

	var items []item.Item
	if err := h.parseResponse(resp, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *httpClient) AdminApproveItem(ctx context.Context, id int64) (*item.Item, error) {
	resp, err := h.doRequest(ctx, "PUT", fmt.Sprintf("/api/admin/items/%d/approve", id), nil)
	if err != nil {
		return nil, err
	}

	var it item.Item
	if err := h.parseResponse(resp, &it); err != nil {
		return nil, err
	}

	return &it, nil
}

func (h *httpClient) AdminRejectItem(ctx context.Context, id int64) (*item.Item, error) {
	resp, err := h.doRequest(ctx, "PUT", fmt.Sprintf("/api/admin/items/%d/reject", id), nil)
	if err != nil {
		return nil, err
	}

	var it item.Item
	if err := h.parseResponse(resp, &it); err != nil {
		return nil, err
	}

	return &it, nil
}

func (h *httpClient) AdminDeleteItem(ctx context.Context, id int64) error {
	resp, err := h.doRequest(ctx, "DELETE", fmt.Sprintf("/api/admin/items/%d", id), nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) AdminUsers(ctx context.Context) ([]user.User, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/admin/users", nil)
	if err != nil {
		return nil, err
	}

	var users []user.User
	if err := h.parseResponse(resp, &users); err != nil {
		return nil, err
	}

	return users, nil
}

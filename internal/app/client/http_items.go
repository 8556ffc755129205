package client

import (
	"context"
	"fmt"

	"rewear/internal/domain/item"
)

func (h *httpClient) GetItems(ctx context.Context, skip, limit int) ([]item.Item, error) {
	resp, err := h.doRequest(ctx, "GET", fmt.Sprintf("/api/items?skip=%d&limit=%d", skip, limit), nil)
	if err != nil {
		return nil, err
	}

	var items []item.Item
	if err := h.parseResponse(resp, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *httpClient) GetItem(ctx context.Context, id int64) (*item.Item, error) {
	resp, err := h.doRequest(ctx, "GET", fmt.Sprintf("/api/items/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var it item.Item
	if err := h.parseResponse(resp, &it); err != nil {
		return nil, err
	}

	return &it, nil
}

func (h *httpClient) CreateItem(ctx context.Context, req item.CreateRequest) (*item.Item, error) {
	resp, err := h.doRequest(ctx, "POST", "/api/items", req)
	if err != nil {
		return nil, err
	}

	var created item.Item
	if err := h.parseResponse(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (h *httpClient) UpdateItem(ctx context.Context, id int64, req item.UpdateRequest) (*item.Item, error) {
	resp, err := h.doRequest(ctx, "PUT", fmt.Sprintf("/api/items/%d", id), req)
	if err != nil {
		return nil, err
	}

	var updated item.Item
	if err := h.parseResponse(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (h *httpClient) DeleteItem(ctx context.Context, id int64) error {
	resp, err := h.doRequest(ctx, "DELETE", fmt.Sprintf("/api/items/%d", id), nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

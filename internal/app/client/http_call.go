package client

import "context"

// CallResult is the voice-bot side channel's response.
type CallResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	CallSID string `json:"call_sid,omitempty"`
}

func (h *httpClient) MakeCall(ctx context.Context) (*CallResult, error) {
	resp, err := h.doRequest(ctx, "POST", "/api/call/make-call", nil)
	if err != nil {
		return nil, err
	}

	var result CallResult
	if err := h.parseResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (h *httpClient) CallHealth(ctx context.Context) (string, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/call/health", nil)
	if err != nil {
		return "", err
	}

	var health struct {
		Status string `json:"status"`
	}
	if err := h.parseResponse(resp, &health); err != nil {
		return "", err
	}

	return health.Status, nil
}

package chest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// HTTPResolver asks a remote lottery endpoint for the reward.
//
// Request:  POST {"userId": "<player>"}
// Response: 200 {"item": "pet_kitsune" | "pet_dragonfly" | null}
type HTTPResolver struct {
	URL    string
	Client *http.Client
}

// NewHTTPResolver creates a resolver for url. A nil client uses http.DefaultClient.
func NewHTTPResolver(url string, client *http.Client) *HTTPResolver {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPResolver{URL: url, Client: client}
}

type openRequest struct {
	UserID string `json:"userId"`
}

type openResponse struct {
	Item *string `json:"item"`
}

// Resolve implements Resolver.
func (h *HTTPResolver) Resolve(ctx context.Context, playerID string) (Reward, error) {
	body, err := json.Marshal(openRequest{UserID: playerID})
	if err != nil {
		return RewardNone, fmt.Errorf("chest: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(body))
	if err != nil {
		return RewardNone, fmt.Errorf("chest: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return RewardNone, fmt.Errorf("chest: open: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return RewardNone, fmt.Errorf("chest: open: unexpected status %s", resp.Status)
	}

	var out openResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return RewardNone, fmt.Errorf("chest: decode response: %w", err)
	}
	if out.Item == nil {
		return RewardNone, nil
	}
	return ParseReward(*out.Item), nil
}

package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the remote snapshot service. The engine only depends
// on fetch/push of the Snapshot shape, not on transport details.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) snapshotURL(userID string) string {
	return fmt.Sprintf("%s/v1/users/%s/snapshot", c.baseURL, userID)
}

// Fetch returns the user's remote snapshot, or nil if the service has
// none (first login). Transport and server errors are returned as-is;
// callers treat them as "remote unavailable", never as fatal.
func (c *Client) Fetch(ctx context.Context, userID string) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.snapshotURL(userID), nil)
	if err != nil {
		return nil, fmt.Errorf("build fetch request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch snapshot: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Push uploads the user's snapshot, replacing the remote copy after the
// server folds it into what it already has.
func (c *Client) Push(ctx context.Context, userID string, snap Snapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.snapshotURL(userID), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push snapshot: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return nil
}

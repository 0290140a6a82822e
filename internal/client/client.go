// Package client is the HTTP client simulation runners use to call back
// into the coordination server for status pushes and the email-sent flag.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/conscient/onboarding-agent/internal/types"
)

// DefaultTimeout bounds every request; the runner falls back to direct file
// mutation when a call fails, so a hung server must not hang the runner.
const DefaultTimeout = 10 * time.Second

// Client talks to the coordination server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL (e.g. "http://localhost:3001").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
}

// UpdateStatus pushes a case-status mutation to the server.
func (c *Client) UpdateStatus(ctx context.Context, id string, status types.CaseStatus, currentStatus string) error {
	body := map[string]string{
		"id":            id,
		"status":        string(status),
		"currentStatus": currentStatus,
	}
	return c.post(ctx, "/api/update-status", body, nil)
}

// EmailSent reads the HTTP email-sent flag.
func (c *Client) EmailSent(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/email-status", nil)
	if err != nil {
		return false, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("server request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return false, fmt.Errorf("server error (%d)", resp.StatusCode)
	}
	var out struct {
		Sent bool `json:"sent"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, err
	}
	return out.Sent, nil
}

// SetEmailSent overwrites the email-sent flag. Runners clear it before
// blocking so a stale flag cannot satisfy a new wait.
func (c *Client) SetEmailSent(ctx context.Context, sent bool) error {
	return c.post(ctx, "/email-status", map[string]bool{"sent": sent}, nil)
}

// Reset asks the server to restore the demo's initial state.
func (c *Client) Reset(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reset", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("server request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("server error (%d)", resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("server request failed: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, string(body))
	}
	if out != nil {
		return json.Unmarshal(body, out)
	}
	return nil
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package notify forwards launch-notification signups to the program's
// work-tracking board. Each signup becomes a task on a fixed list so staff
// can follow up; nothing is stored locally.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when the work-tracker credentials are absent.
// Callers fail closed: a signup is never silently dropped.
var ErrNotConfigured = errors.New("notify: work tracker credentials not configured")

// Signup is one launch-notification request from the public site.
type Signup struct {
	FullName         string
	Email            string
	CountryOfService string
	HowDidYouHear    string
}

// Config holds the work-tracker connection settings.
type Config struct {
	// BaseURL of the work-tracking API. Defaults to the hosted service.
	BaseURL string
	// APIToken authorizes task creation. Empty means not configured.
	APIToken string
	// ListID is the board list that receives signup tasks.
	ListID string
}

// Client creates work-tracker tasks for signups.
type Client struct {
	config Config
	client *http.Client
}

// NewClient creates a work-tracker client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.clickup.com"
	}
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether the client has the credentials it needs.
func (c *Client) Configured() bool {
	return c.config.APIToken != "" && c.config.ListID != ""
}

// Submit creates a task on the signup list for one signup. Returns
// ErrNotConfigured when credentials are absent so the handler can fail
// closed with a 500.
func (c *Client) Submit(ctx context.Context, s Signup) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	body := taskRequest{
		Name:        s.FullName + " — launch notification signup",
		Description: taskDescription(s),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("notify marshal: %w", err)
	}

	url := fmt.Sprintf("%s/api/v2/list/%s/task", c.config.BaseURL, c.config.ListID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("notify request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.config.APIToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("work tracker error (status %d): %s", resp.StatusCode, string(detail))
	}

	return nil
}

func taskDescription(s Signup) string {
	return fmt.Sprintf("Email: %s\nCountry of service: %s\nHow did you hear: %s",
		s.Email, s.CountryOfService, s.HowDidYouHear)
}

// --- work tracker API types ---

type taskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

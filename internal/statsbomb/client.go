// Package statsbomb reads competitions, matches, lineups and events from a
// StatsBomb open-data style JSON tree served over HTTP.
package statsbomb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://raw.githubusercontent.com/statsbomb/open-data/master/data"

// Client fetches provider JSON documents
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client; empty baseURL and non-positive timeout use defaults
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout, Transport: transport},
	}
}

// Competitions lists every available competition season
func (c *Client) Competitions(ctx context.Context) ([]Competition, error) {
	var out []Competition
	if err := c.getJSON(ctx, "/competitions.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Matches lists the matches of one competition season
func (c *Client) Matches(ctx context.Context, competitionID, seasonID int64) ([]Match, error) {
	var out []Match
	if err := c.getJSON(ctx, fmt.Sprintf("/matches/%d/%d.json", competitionID, seasonID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Lineups returns both team lineups of a match
func (c *Client) Lineups(ctx context.Context, matchID int64) ([]TeamLineup, error) {
	var out []TeamLineup
	if err := c.getJSON(ctx, fmt.Sprintf("/lineups/%d.json", matchID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Events returns the event stream of a match
func (c *Client) Events(ctx context.Context, matchID int64) ([]Event, error) {
	var out []Event
	if err := c.getJSON(ctx, fmt.Sprintf("/events/%d.json", matchID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Path: path, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// StatusError is returned for non-2xx provider responses
type StatusError struct {
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d: %s", e.Path, e.StatusCode, e.Body)
}

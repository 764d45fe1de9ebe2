package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/scriptloft/beatboard/pkg/screenplay"
)

const defaultTimeout = 15 * time.Second

// HTTPClient talks JSON to the screenplay backend with bearer auth.
type HTTPClient struct {
	baseURL   string
	token     string
	projectID string
	client    *http.Client
}

var _ Service = (*HTTPClient)(nil)

// NewHTTPClient builds a client from the resolved config.
func NewHTTPClient(cfg *Config) (*HTTPClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("service: nil config")
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("service: base URL not configured")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("service: parse base URL: %w", err)
	}
	return &HTTPClient{
		baseURL:   base,
		token:     cfg.Token,
		projectID: cfg.ProjectID,
		client:    &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Beats implements Service.
func (c *HTTPClient) Beats(ctx context.Context) ([]screenplay.Beat, error) {
	endpoint := fmt.Sprintf("%s/v1/projects/%s/beats", c.baseURL, url.PathEscape(c.projectID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("service: build beats request: %w", err)
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("service: fetch beats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.remoteError("fetch beats", resp)
	}

	var payload struct {
		Beats []screenplay.Beat `json:"beats"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("service: decode beats: %w", err)
	}
	return screenplay.Normalize(payload.Beats), nil
}

// MoveScene implements Service.
func (c *HTTPClient) MoveScene(ctx context.Context, sceneID, beatID string, order int) error {
	body, err := json.Marshal(map[string]interface{}{
		"beat_id": beatID,
		"order":   order,
	})
	if err != nil {
		return fmt.Errorf("service: encode move request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/projects/%s/scenes/%s/move",
		c.baseURL, url.PathEscape(c.projectID), url.PathEscape(sceneID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("service: build move request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("service: move scene: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.remoteError("move scene", resp)
	}
	return nil
}

func (c *HTTPClient) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// remoteError surfaces the server-provided message where available so the UI
// can show it in a toast, generic otherwise.
func (c *HTTPClient) remoteError(op string, resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Error != "" {
			return fmt.Errorf("service: %s: %s", op, payload.Error)
		}
		if payload.Message != "" {
			return fmt.Errorf("service: %s: %s", op, payload.Message)
		}
	}
	return fmt.Errorf("service: %s: unexpected status %d", op, resp.StatusCode)
}

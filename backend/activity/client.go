package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var ErrNotConfigured = errors.New("activity backend URL is not configured")

const defaultTimeout = 10 * time.Second

// Client talks to the external coding-activity backend. Every request carries
// the x-api-key header.
type Client struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Timeout: defaultTimeout,
	}
}

func (c *Client) timeout(ctx context.Context) time.Duration {
	t := c.Timeout
	if t <= 0 {
		t = defaultTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < t {
			t = left
		}
	}
	return t
}

func (c *Client) do(ctx context.Context, agent *fiber.Agent, failure string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	agent.Set("x-api-key", c.APIKey)
	agent.Timeout(c.timeout(ctx))

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("activity backend: %w", errors.Join(errs...))
	}
	if code < 200 || code > 299 {
		return nil, &Error{Status: code, Message: failure}
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, path, failure string, dest interface{}) error {
	if c.BaseURL == "" {
		return ErrNotConfigured
	}

	body, err := c.do(ctx, fiber.Get(c.BaseURL+path), failure)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("decode activity response: %w", err)
	}
	return nil
}

// Live fetches the current snapshot. Missing counters default to zero and
// last_updated falls back to the older last_update field.
func (c *Client) Live(ctx context.Context) (*Live, error) {
	var raw struct {
		TotalActiveSeconds int64  `json:"total_active_seconds"`
		IsActiveNow        bool   `json:"is_active_now"`
		DailyActiveSeconds int64  `json:"daily_active_seconds"`
		LastUpdated        string `json:"last_updated"`
		LastUpdate         string `json:"last_update"`
	}
	if err := c.get(ctx, "/api/leetcode", "Failed to fetch LeetCode data", &raw); err != nil {
		return nil, err
	}

	live := &Live{
		TotalActiveSeconds: raw.TotalActiveSeconds,
		IsActiveNow:        raw.IsActiveNow,
		DailyActiveSeconds: raw.DailyActiveSeconds,
		LastUpdated:        raw.LastUpdated,
	}
	if live.LastUpdated == "" {
		live.LastUpdated = raw.LastUpdate
	}
	return live, nil
}

// Push forwards an activity update body unchanged.
func (c *Client) Push(ctx context.Context, body []byte) error {
	if c.BaseURL == "" {
		return ErrNotConfigured
	}

	agent := fiber.Post(c.BaseURL + "/api/leetcode")
	agent.ContentType(fiber.MIMEApplicationJSON)
	agent.Body(body)

	_, err := c.do(ctx, agent, "Failed to update LeetCode data")
	return err
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	if err := c.get(ctx, "/api/leetcode/stats", "Failed to fetch LeetCode stats", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// History requests per-day totals for the days before now (UTC dates).
func (c *Client) History(ctx context.Context, days int, now time.Time) (*History, error) {
	end := now.UTC()
	start := end.AddDate(0, 0, -days)

	q := url.Values{}
	q.Set("start_date", start.Format("2006-01-02"))
	q.Set("end_date", end.Format("2006-01-02"))

	var h History
	if err := c.get(ctx, "/api/leetcode/history?"+q.Encode(), "Failed to fetch LeetCode history", &h); err != nil {
		return nil, err
	}
	return &h, nil
}

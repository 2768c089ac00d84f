package liveclient

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

	"liquidacenter-live/internal/domain"
)

// APIError carries the status and {"error": message} payload of a
// failed request.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsForbidden reports whether the request was rejected as a duplicate
// vote.
func (e *APIError) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

// IsConflict reports whether the request lost to an already running
// broadcast.
func (e *APIError) IsConflict() bool {
	return e.StatusCode == http.StatusConflict
}

// Client is a typed HTTP client for the live endpoints, used by the
// viewer session controller and the admin control panel.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// LiveQuestion fetches the current question state.
func (c *Client) LiveQuestion(ctx context.Context) (domain.LiveQuestion, error) {
	var q domain.LiveQuestion
	err := c.do(ctx, http.MethodGet, "/api/live-question", nil, &q)
	return q, err
}

// SetLiveQuestion overwrites the question state (broadcast or clear).
func (c *Client) SetLiveQuestion(ctx context.Context, q domain.LiveQuestion) (domain.LiveQuestion, error) {
	var stored domain.LiveQuestion
	err := c.do(ctx, http.MethodPost, "/api/live-question", q, &stored)
	return stored, err
}

// VoteResults fetches the tally for a question.
func (c *Client) VoteResults(ctx context.Context, questionID string) (domain.VoteResults, error) {
	var results domain.VoteResults
	path := "/api/live-vote?questionId=" + url.QueryEscape(questionID)
	err := c.do(ctx, http.MethodGet, path, nil, &results)
	return results, err
}

// CastVote submits one vote for a question option.
func (c *Client) CastVote(ctx context.Context, questionID, userID string, option int) error {
	req := domain.VoteRequest{
		QuestionID: questionID,
		UserID:     userID,
		VoteIndex:  &option,
	}
	return c.do(ctx, http.MethodPost, "/api/live-vote", req, nil)
}

// Stats fetches the viewer/like counters.
func (c *Client) Stats(ctx context.Context) (domain.LiveStats, error) {
	var stats domain.LiveStats
	err := c.do(ctx, http.MethodGet, "/api/live-stats", nil, &stats)
	return stats, err
}

// ApplyStats sends a join/leave/like action and returns the updated
// counters.
func (c *Client) ApplyStats(ctx context.Context, action domain.StatsAction) (domain.LiveStats, error) {
	var stats domain.LiveStats
	body := map[string]string{"action": string(action)}
	err := c.do(ctx, http.MethodPost, "/api/live-stats", body, &stats)
	return stats, err
}

// ChatMessages fetches the chat window, oldest first.
func (c *Client) ChatMessages(ctx context.Context) ([]domain.ChatMessage, error) {
	var messages []domain.ChatMessage
	err := c.do(ctx, http.MethodGet, "/api/live-chat", nil, &messages)
	return messages, err
}

// PostChat sends a chat message and returns the stored echo.
func (c *Client) PostChat(ctx context.Context, userName string, role domain.UserRole, text string) (domain.ChatMessage, error) {
	var msg domain.ChatMessage
	body := map[string]string{
		"userName": userName,
		"role":     string(role),
		"text":     text,
	}
	err := c.do(ctx, http.MethodPost, "/api/live-chat", body, &msg)
	return msg, err
}

// Banner fetches the storefront banner.
func (c *Client) Banner(ctx context.Context) (domain.Banner, error) {
	var banner domain.Banner
	err := c.do(ctx, http.MethodGet, "/api/quiz-state", nil, &banner)
	return banner, err
}

// SetBanner updates the storefront banner.
func (c *Client) SetBanner(ctx context.Context, active bool, title, message string) (domain.Banner, error) {
	var banner domain.Banner
	body := map[string]interface{}{
		"active":  active,
		"title":   title,
		"message": message,
	}
	err := c.do(ctx, http.MethodPost, "/api/quiz-state", body, &banner)
	return banner, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		if payload.Error == "" {
			payload.Error = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

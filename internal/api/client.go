// Package api is the typed HTTP client for the bookstore chat backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/huynh044/ChatBot-BookStore/internal/model/chat"
)

// ErrResetFailed reports a reset call the server answered with ok=false.
var ErrResetFailed = errors.New("chat reset rejected by server")

// SendResult carries the assistant reply and the conversational state
// reported by the send endpoint.
type SendResult struct {
	Reply string `json:"reply"`
	State string `json:"state"`
}

// Client talks to the chat backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the backend at baseURL (scheme://host[:port]).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// History fetches the ordered transcript for a session.
func (c *Client) History(ctx context.Context, sessionID string) ([]chat.Message, error) {
	endpoint := c.baseURL + "/api/chat/history?session_id=" + url.QueryEscape(sessionID)

	var payload struct {
		Messages []chat.Message `json:"messages"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Messages, nil
}

// Send posts one user message and returns the assistant reply.
func (c *Client) Send(ctx context.Context, sessionID, text string) (SendResult, error) {
	body := map[string]string{"session_id": sessionID, "message": text}

	var result SendResult
	if err := c.postJSON(ctx, c.baseURL+"/api/chat", body, &result); err != nil {
		return SendResult{}, err
	}
	return result, nil
}

// Reset starts a fresh conversation and returns its session identifier.
func (c *Client) Reset(ctx context.Context) (string, error) {
	var payload struct {
		OK        bool   `json:"ok"`
		SessionID string `json:"session_id"`
	}
	if err := c.postJSON(ctx, c.baseURL+"/api/chat/reset", nil, &payload); err != nil {
		return "", err
	}
	if !payload.OK {
		return "", ErrResetFailed
	}
	return payload.SessionID, nil
}

// ListSessions fetches the admin chat list, optionally filtered by q.
func (c *Client) ListSessions(ctx context.Context, q string) ([]chat.SessionSummary, error) {
	endpoint := c.baseURL + "/admin/api/chats"
	if q != "" {
		endpoint += "?q=" + url.QueryEscape(q)
	}

	var payload struct {
		Items []chat.SessionSummary `json:"items"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// Transcript fetches one session's messages through the admin read API.
func (c *Client) Transcript(ctx context.Context, sessionID string) ([]chat.Message, error) {
	var payload struct {
		Messages []chat.Message `json:"messages"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/admin/api/chats/"+url.PathEscape(sessionID), &payload); err != nil {
		return nil, err
	}
	return payload.Messages, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: unexpected status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

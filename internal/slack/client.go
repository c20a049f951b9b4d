// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/jeranaias/slackline-tui/internal/model"
)

// Configuration constants for the Slack API client.
const (
	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// Response size limit prevents memory exhaustion on a hostile proxy.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB

	// apiRate is the steady request rate allowed against the API.
	// Slack's web API tiers sit around one request per second.
	apiRate = rate.Limit(1)

	// apiBurst allows the startup sequence (session start, channel list,
	// user list) to go out back to back.
	apiBurst = 4
)

// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
// Shared HTTP client with connection pooling for all API requests.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
	Timeout: DefaultTimeout,
}

// APIError is a non-transport failure from the Slack API: either a
// non-200 HTTP status or an ok:false envelope with a reason.
type APIError struct {
	Endpoint   string
	StatusCode int
	Reason     string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("slack %s: %s", e.Endpoint, e.Reason)
	}
	return fmt.Sprintf("slack %s: response status %d", e.Endpoint, e.StatusCode)
}

// =============================================================================
// CLIENT
// =============================================================================

// Client is the request/response half of the transport. It owns the
// authentication token and attaches it to every call.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	limiter *rate.Limiter
}

// NewClient creates an API client for the given base URL and token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   sharedHTTPClient,
		limiter: rate.NewLimiter(apiRate, apiBurst),
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func (c *Client) WithHTTPClient(httpc *http.Client) *Client {
	c.httpc = httpc
	return c
}

// call performs one GET against /api/<endpoint> with the token attached,
// decodes the response into out and unwraps the ok envelope.
func (c *Client) call(ctx context.Context, endpoint string, query url.Values, out envelope) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("slack %s: %w", endpoint, err)
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("token", c.token)

	reqURL := fmt.Sprintf("%s/api/%s?%s", c.baseURL, endpoint, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("slack %s: %w", endpoint, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("slack %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return fmt.Errorf("slack %s: reading response: %w", endpoint, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("slack %s: decoding response: %w", endpoint, err)
	}

	if ok, reason := out.success(); !ok {
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode, Reason: reason}
	}
	return nil
}

// =============================================================================
// ENDPOINTS
// =============================================================================

// StartSession calls rtm.start: it returns the URL for the streaming
// connection and the caller's own identity.
func (c *Client) StartSession(ctx context.Context) (streamURL string, self model.User, err error) {
	var resp sessionStartResponse
	if err := c.call(ctx, "rtm.start", nil, &resp); err != nil {
		return "", model.User{}, err
	}
	return resp.URL, model.User{ID: resp.Self.ID, Name: resp.Self.Name}, nil
}

// ListChannels returns the channel directory snapshot.
func (c *Client) ListChannels(ctx context.Context) ([]model.Channel, error) {
	var resp channelListResponse
	if err := c.call(ctx, "channels.list", nil, &resp); err != nil {
		return nil, err
	}
	channels := make([]model.Channel, len(resp.Channels))
	for i, ch := range resp.Channels {
		channels[i] = model.Channel{ID: ch.ID, Name: ch.Name}
	}
	return channels, nil
}

// JoinChannel joins a channel by name and returns it, id included.
func (c *Client) JoinChannel(ctx context.Context, name string) (model.Channel, error) {
	q := url.Values{}
	q.Set("name", name)
	var resp joinChannelResponse
	if err := c.call(ctx, "channels.join", q, &resp); err != nil {
		return model.Channel{}, err
	}
	return model.Channel{ID: resp.Channel.ID, Name: resp.Channel.Name}, nil
}

// ChannelHistory fetches a channel's recent messages, newest first, plus
// the service's latest-read timestamp for the subsequent mark call.
func (c *Client) ChannelHistory(ctx context.Context, channelID string) ([]HistoryMessage, string, error) {
	q := url.Values{}
	q.Set("channel", channelID)
	var resp historyResponse
	if err := c.call(ctx, "channels.history", q, &resp); err != nil {
		return nil, "", err
	}
	return resp.Messages, resp.Latest, nil
}

// MarkChannel records the latest-read timestamp for a channel.
func (c *Client) MarkChannel(ctx context.Context, channelID, ts string) error {
	q := url.Values{}
	q.Set("channel", channelID)
	q.Set("ts", ts)
	var resp markResponse
	return c.call(ctx, "channels.mark", q, &resp)
}

// ListUsers returns the user directory snapshot.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var resp userListResponse
	if err := c.call(ctx, "users.list", nil, &resp); err != nil {
		return nil, err
	}
	users := make([]model.User, len(resp.Members))
	for i, u := range resp.Members {
		users[i] = model.User{ID: u.ID, Name: u.Name}
	}
	return users, nil
}

// OpenIM opens (or resumes) a direct-message channel with a user and
// returns the DM channel id.
func (c *Client) OpenIM(ctx context.Context, userID string) (string, error) {
	q := url.Values{}
	q.Set("user", userID)
	var resp openIMResponse
	if err := c.call(ctx, "im.open", q, &resp); err != nil {
		return "", err
	}
	return resp.Channel.ID, nil
}

// IMHistory fetches a direct-message channel's recent messages, newest
// first, plus the latest-read timestamp.
func (c *Client) IMHistory(ctx context.Context, channelID string) ([]HistoryMessage, string, error) {
	q := url.Values{}
	q.Set("channel", channelID)
	var resp historyResponse
	if err := c.call(ctx, "im.history", q, &resp); err != nil {
		return nil, "", err
	}
	return resp.Messages, resp.Latest, nil
}

// MarkIM records the latest-read timestamp for a direct-message channel.
func (c *Client) MarkIM(ctx context.Context, channelID, ts string) error {
	q := url.Values{}
	q.Set("channel", channelID)
	q.Set("ts", ts)
	var resp markResponse
	return c.call(ctx, "im.mark", q, &resp)
}

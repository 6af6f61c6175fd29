// Package api is a typed client for the movie database REST backend.
//
// Every accessor issues exactly one GET and decodes the JSON body into the
// matching model type. Nothing is cached or retried: transport failures are
// returned as-is and non-2xx responses come back as *StatusError.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moviedb-bot/internal/model"
)

const DefaultBaseUrl = "http://localhost:8000"

// errorBodyLimit caps how much of a failed response body is kept on StatusError.
const errorBodyLimit = 4 << 10

// Client is the shared dispatch object behind the resource services. It is
// immutable after NewClient and safe for concurrent use.
type Client struct {
	baseUrl    string
	httpClient *http.Client
	header     http.Header

	Movies    *MovieService
	Actors    *ActorService
	Directors *DirectorService
	Chat      *ChatService
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. The default one has no
// timeout; cancellation goes through the request context.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func NewClient(baseUrl string, opts ...Option) (*Client, error) {
	baseUrl = strings.TrimRight(strings.TrimSpace(baseUrl), "/")
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	u, err := url.Parse(baseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base url must be an absolute http(s) url, got %q", baseUrl)
	}

	c := &Client{
		baseUrl:    baseUrl,
		httpClient: &http.Client{},
		header: http.Header{
			"Content-Type": []string{"application/json"},
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Movies = &MovieService{client: c}
	c.Actors = &ActorService{client: c}
	c.Directors = &DirectorService{client: c}
	c.Chat = &ChatService{client: c}
	return c, nil
}

func (c *Client) BaseUrl() string {
	return c.baseUrl
}

// Health reports whether the backend is up.
func (c *Client) Health(ctx context.Context) (*model.Health, error) {
	var health model.Health
	if err := c.get(ctx, "/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	reqUrl := c.baseUrl + path
	if len(query) > 0 {
		reqUrl += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return err
	}
	for key, values := range c.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("api request failed", "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	slog.Debug("api request",
		"path", path,
		"query", query.Encode(),
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &StatusError{
			Method:     http.MethodGet,
			Path:       path,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// Package api is the client for the posts service. Every call degrades to
// a safe fallback instead of returning an error: callers cannot tell a
// failed request from an empty answer.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/bryan-buckman/foodmood/internal/model"
)

// DefaultBase is used when no base URL is configured.
const DefaultBase = "http://localhost:8000"

// Client talks to the posts service.
type Client struct {
	base string
	http *http.Client
}

// New creates a client for base. An empty base means DefaultBase.
// A nil httpClient means http.DefaultClient.
func New(base string, httpClient *http.Client) *Client {
	if base == "" {
		base = DefaultBase
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: httpClient,
	}
}

// Base returns the configured base URL.
func (c *Client) Base() string {
	return c.base
}

// GetPosts lists posts. Any failure yields an empty, non-nil slice.
func (c *Client) GetPosts(ctx context.Context) []model.Post {
	body, err := c.do(ctx, http.MethodGet, "/posts", nil)
	if err != nil {
		log.Printf("getPosts failed, falling back to empty list: %v", err)
		return []model.Post{}
	}
	var posts []model.Post
	if err := json.Unmarshal(body, &posts); err != nil {
		log.Printf("getPosts: response is not a post list, falling back to empty list: %v", err)
		return []model.Post{}
	}
	if posts == nil {
		return []model.Post{}
	}
	return posts
}

// GetPost fetches one post, or nil on any failure.
func (c *Client) GetPost(ctx context.Context, id string) *model.Post {
	body, err := c.do(ctx, http.MethodGet, "/posts/"+url.PathEscape(id), nil)
	if err != nil {
		log.Printf("getPost failed: %v", err)
		return nil
	}
	var p model.Post
	if err := json.Unmarshal(body, &p); err != nil {
		log.Printf("getPost: response is not a post: %v", err)
		return nil
	}
	return &p
}

// CreatePost sends payload as JSON. It returns the decoded JSON response,
// or the raw text when the response is not JSON, or nil on failure.
func (c *Client) CreatePost(ctx context.Context, payload any) any {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("createPost failed: encode payload: %v", err)
		return nil
	}
	body, err := c.do(ctx, http.MethodPost, "/posts", data)
	if err != nil {
		log.Printf("createPost failed: %v", err)
		return nil
	}
	return safeJSON(body)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	var r io.Reader
	if payload != nil {
		r = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, r)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("API error %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// safeJSON decodes body as JSON, falling back to the raw text.
func safeJSON(body []byte) any {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}

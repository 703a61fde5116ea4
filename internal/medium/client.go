// Copyright easylive1989, 2026. All rights reserved.

// Package medium creates draft posts on the publishing platform. Image
// upload is deliberately not covered.
package medium

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/easylive1989/noteops/internal/httputil"
	"github.com/easylive1989/noteops/pkg/types"
)

// apiBase is the API root. Declared as a var so tests can substitute an
// httptest server.
var apiBase = "https://api.medium.com/v1"

// Client is an authenticated publishing client for one user account.
type Client struct {
	client    *http.Client
	token     string
	userID    string
	userAgent string
}

// NewClient builds a client for the given user.
func NewClient(token, userID string, cfg types.HTTPConfig) *Client {
	return &Client{
		client:    httputil.NewClient(cfg),
		token:     token,
		userID:    userID,
		userAgent: cfg.UserAgent,
	}
}

// PostInfo identifies a created post.
type PostInfo struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateDraft creates a Markdown draft post under the configured user.
// The post stays unpublished until the author reviews it.
func (c *Client) CreateDraft(ctx context.Context, title, content string, tags []string) (PostInfo, error) {
	payload := map[string]any{
		"title":         title,
		"contentFormat": "markdown",
		"content":       content,
		"tags":          tags,
		"publishStatus": "draft",
	}
	req, err := httputil.NewJSONRequest(ctx, http.MethodPost, apiBase+"/users/"+c.userID+"/posts", payload)
	if err != nil {
		return PostInfo{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Charset", "utf-8")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	res, err := httputil.Do(c.client, req)
	if err != nil {
		return PostInfo{}, fmt.Errorf("create post: %w", err)
	}
	if err := res.Err("create post"); err != nil {
		return PostInfo{}, err
	}

	var envelope struct {
		Data PostInfo `json:"data"`
	}
	if err := json.Unmarshal(res.Body, &envelope); err != nil {
		return PostInfo{}, fmt.Errorf("parsing create post response: %w", err)
	}
	return envelope.Data, nil
}

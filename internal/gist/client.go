// Copyright easylive1989, 2026. All rights reserved.

// Package gist hosts code snippets as secret gists so posts can embed
// them instead of inlining code.
package gist

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
var apiBase = "https://api.github.com"

// Client creates gists on behalf of one account.
type Client struct {
	client    *http.Client
	token     string
	userAgent string
}

// NewClient builds a client authenticated with the given token.
func NewClient(token string, cfg types.HTTPConfig) *Client {
	return &Client{
		client:    httputil.NewClient(cfg),
		token:     token,
		userAgent: cfg.UserAgent,
	}
}

type gistFile struct {
	Content string `json:"content"`
}

// CreateSecret creates a secret gist holding the given files (name to
// content) and returns its ID.
func (c *Client) CreateSecret(ctx context.Context, description string, files map[string]string) (string, error) {
	wrapped := make(map[string]gistFile, len(files))
	for name, content := range files {
		wrapped[name] = gistFile{Content: content}
	}
	payload := map[string]any{
		"description": description,
		"public":      false,
		"files":       wrapped,
	}

	req, err := httputil.NewJSONRequest(ctx, http.MethodPost, apiBase+"/gists", payload)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	res, err := httputil.Do(c.client, req)
	if err != nil {
		return "", fmt.Errorf("create gist: %w", err)
	}
	if err := res.Err("create gist"); err != nil {
		return "", err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(res.Body, &created); err != nil {
		return "", fmt.Errorf("parsing create gist response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("create gist response carried no id: %s", res.Body)
	}
	return created.ID, nil
}

// EmbedScript returns the script tag that embeds one file of a gist.
func EmbedScript(user, gistID, file string) string {
	return "<script src='https://gist.github.com/" + user + "/" + gistID + ".js?file=" + file + "'></script>"
}

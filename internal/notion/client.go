// Copyright easylive1989, 2026. All rights reserved.

// Package notion is the query/write gateway to the remote notes store.
// It covers only the endpoints the automations use: database query, page
// create/update, page and block reads, and schema reads.
package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/easylive1989/noteops/internal/httputil"
	"github.com/easylive1989/noteops/pkg/types"
)

// apiBase is the versioned API root. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://api.notion.com/v1"

// apiVersion is sent as the required version header on every call.
const apiVersion = "2022-06-28"

// Client is an authenticated gateway to the remote store.
type Client struct {
	client    *http.Client
	token     string
	userAgent string
}

// NewClient builds a gateway authenticated with the given bearer token.
func NewClient(token string, cfg types.HTTPConfig) *Client {
	return &Client{
		client:    httputil.NewClient(cfg),
		token:     token,
		userAgent: cfg.UserAgent,
	}
}

// do executes one API call and returns the raw result. Transport failures
// are the only errors; callers decide whether a non-success status is fatal.
func (c *Client) do(ctx context.Context, method, path string, payload any) (httputil.Result, error) {
	req, err := httputil.NewJSONRequest(ctx, method, apiBase+path, payload)
	if err != nil {
		return httputil.Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return httputil.Do(c.client, req)
}

// queryResponse is the envelope of list-shaped responses.
type queryResponse struct {
	Results []json.RawMessage `json:"results"`
}

// QueryDatabase returns the rows of a database matching filter. A nil
// filter returns every row.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, filter Filter) ([]Page, error) {
	body := map[string]any{}
	if filter != nil {
		body["filter"] = filter
	}
	res, err := c.do(ctx, http.MethodPost, "/databases/"+databaseID+"/query", body)
	if err != nil {
		return nil, fmt.Errorf("query database: %w", err)
	}
	if err := res.Err("query database"); err != nil {
		return nil, err
	}

	var qr queryResponse
	if err := json.Unmarshal(res.Body, &qr); err != nil {
		return nil, fmt.Errorf("parsing query response: %w", err)
	}
	pages := make([]Page, 0, len(qr.Results))
	for _, raw := range qr.Results {
		var p Page
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("parsing query result: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// GetPage fetches a page's properties.
func (c *Client) GetPage(ctx context.Context, pageID string) (Page, error) {
	res, err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil)
	if err != nil {
		return Page{}, fmt.Errorf("get page: %w", err)
	}
	if err := res.Err("get page"); err != nil {
		return Page{}, err
	}

	var p Page
	if err := json.Unmarshal(res.Body, &p); err != nil {
		return Page{}, fmt.Errorf("parsing page: %w", err)
	}
	return p, nil
}

// GetBlockChildren fetches the ordered top-level content blocks of a page
// or block.
func (c *Client) GetBlockChildren(ctx context.Context, blockID string) ([]Block, error) {
	res, err := c.do(ctx, http.MethodGet, "/blocks/"+blockID+"/children", nil)
	if err != nil {
		return nil, fmt.Errorf("get block children: %w", err)
	}
	if err := res.Err("get block children"); err != nil {
		return nil, err
	}

	var envelope struct {
		Results []Block `json:"results"`
	}
	if err := json.Unmarshal(res.Body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing block children: %w", err)
	}
	return envelope.Results, nil
}

// GetDatabase fetches a database's column schema.
func (c *Client) GetDatabase(ctx context.Context, databaseID string) (Database, error) {
	res, err := c.do(ctx, http.MethodGet, "/databases/"+databaseID, nil)
	if err != nil {
		return Database{}, fmt.Errorf("get database: %w", err)
	}
	if err := res.Err("get database"); err != nil {
		return Database{}, err
	}

	var db Database
	if err := json.Unmarshal(res.Body, &db); err != nil {
		return Database{}, fmt.Errorf("parsing database: %w", err)
	}
	return db, nil
}

// PropertyNamesByType resolves property names by declared column type,
// returning the first matching name per requested type. Types with no
// matching column are absent from the result; the caller decides which
// ones are required.
func (c *Client) PropertyNamesByType(ctx context.Context, databaseID string, propTypes ...string) (map[string]string, error) {
	db, err := c.GetDatabase(ctx, databaseID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(propTypes))
	for _, want := range propTypes {
		for name, def := range db.Properties {
			if def.Type == want {
				names[want] = name
				break
			}
		}
	}
	return names, nil
}

// CreatePage creates a new row in a database. The raw result is returned
// so best-effort callers can report a non-success status and continue;
// the error covers transport failures only.
func (c *Client) CreatePage(ctx context.Context, databaseID string, properties map[string]PropertyValue) (httputil.Result, error) {
	body := map[string]any{
		"parent":     map[string]string{"database_id": databaseID},
		"properties": properties,
	}
	return c.do(ctx, http.MethodPost, "/pages", body)
}

// UpdatePage patches the properties of an existing page.
func (c *Client) UpdatePage(ctx context.Context, pageID string, properties map[string]PropertyValue) (httputil.Result, error) {
	body := map[string]any{"properties": properties}
	return c.do(ctx, http.MethodPatch, "/pages/"+pageID, body)
}

// AppendBlockChildren appends content blocks to a page or block.
func (c *Client) AppendBlockChildren(ctx context.Context, blockID string, blocks []Block) (httputil.Result, error) {
	body := map[string]any{"children": blocks}
	return c.do(ctx, http.MethodPatch, "/blocks/"+blockID+"/children", body)
}

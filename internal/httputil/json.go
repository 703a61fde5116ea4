// Copyright easylive1989, 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the API clients.
package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/easylive1989/noteops/pkg/types"
)

// NewClient builds an http.Client from shared HTTP settings.
func NewClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// NewJSONRequest builds a request carrying payload as a JSON body with
// Content-Type set. A nil payload produces a bodyless request.
func NewJSONRequest(ctx context.Context, method, url string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// Result is the outcome of a completed HTTP call: the status code and the
// fully read response body. Callers on best-effort paths inspect it
// instead of treating a non-success status as an error.
type Result struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Err returns an error describing a non-success response, or nil when the
// call succeeded. op names the remote operation for the message.
func (r Result) Err(op string) error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%s returned HTTP %d: %s", op, r.StatusCode, r.Body)
}

// Do executes the request and reads the full response body. The returned
// error covers transport failures only; status handling is the caller's.
func Do(client *http.Client, req *http.Request) (Result, error) {
	resp, err := client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("reading response body: %w", err)
	}
	return Result{StatusCode: resp.StatusCode, Body: body}, nil
}

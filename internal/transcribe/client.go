// Copyright easylive1989, 2026. All rights reserved.

// Package transcribe wraps the speech-to-text API: one audio file in, one
// plain-text transcript out.
package transcribe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/easylive1989/noteops/internal/httputil"
	"github.com/easylive1989/noteops/pkg/types"
)

// apiBase is the API root. Declared as a var so tests can substitute an
// httptest server.
var apiBase = "https://api.openai.com/v1"

// Transcriber converts an audio file to text. The command layer depends
// on this so tests can supply a mock.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Client calls the hosted transcription model.
type Client struct {
	client    *http.Client
	token     string
	model     string
	userAgent string
}

var _ Transcriber = (*Client)(nil)

// NewClient builds a client using the configured model.
func NewClient(token string, cfg types.TranscribeConfig) *Client {
	return &Client{
		client:    httputil.NewClient(cfg.HTTPConfig),
		token:     token,
		model:     cfg.Model,
		userAgent: cfg.UserAgent,
	}
}

// Transcribe uploads the audio file as a multipart form and returns the
// plain-text transcript.
func (c *Client) Transcribe(ctx context.Context, audioPath string) (string, error) {
	audio, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("opening audio file: %w", err)
	}
	defer audio.Close()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("model", c.model); err != nil {
		return "", fmt.Errorf("building form: %w", err)
	}
	if err := form.WriteField("response_format", "text"); err != nil {
		return "", fmt.Errorf("building form: %w", err)
	}
	part, err := form.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", fmt.Errorf("building form: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("reading audio file: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("building form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiBase+"/audio/transcriptions", &body)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.token)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	res, err := httputil.Do(c.client, req)
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}
	if err := res.Err("transcription"); err != nil {
		return "", err
	}
	return string(res.Body), nil
}

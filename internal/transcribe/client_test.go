// Copyright easylive1989, 2026. All rights reserved.

package transcribe

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easylive1989/noteops/pkg/types"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	orig := apiBase
	apiBase = srv.URL
	t.Cleanup(func() { apiBase = orig })

	return NewClient("openai-key", types.TranscribeConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second},
		Model:      "whisper-1",
	})
}

func writeAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memo.mp3")
	require.NoError(t, os.WriteFile(path, []byte("fake mp3 bytes"), 0o644))
	return path
}

func TestTranscribe(t *testing.T) {
	var gotModel, gotFormat, gotFile, gotAuth string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/audio/transcriptions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotModel = r.FormValue("model")
		gotFormat = r.FormValue("response_format")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFile = header.Filename
		data, _ := io.ReadAll(file)
		assert.Equal(t, "fake mp3 bytes", string(data))

		io.WriteString(w, "Hello, this is the transcript.")
	})

	text, err := c.Transcribe(context.Background(), writeAudio(t))
	require.NoError(t, err)

	assert.Equal(t, "Hello, this is the transcript.", text)
	assert.Equal(t, "Bearer openai-key", gotAuth)
	assert.Equal(t, "whisper-1", gotModel)
	assert.Equal(t, "text", gotFormat)
	assert.Equal(t, "memo.mp3", gotFile)
}

func TestTranscribeNonSuccess(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"message":"Incorrect API key"}}`)
	})

	_, err := c.Transcribe(context.Background(), writeAudio(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
	assert.Contains(t, err.Error(), "Incorrect API key")
}

func TestTranscribeMissingFile(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	_, err := c.Transcribe(context.Background(), filepath.Join(t.TempDir(), "absent.mp3"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "opening audio file"))
}

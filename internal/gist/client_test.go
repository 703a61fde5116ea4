// Copyright easylive1989, 2026. All rights reserved.

package gist

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
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

	return NewClient("gh-token", types.HTTPConfig{Timeout: 5 * time.Second})
}

func TestCreateSecret(t *testing.T) {
	var gotBody map[string]any
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gists", r.URL.Path)
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer gh-token", r.Header.Get("Authorization"))
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &gotBody))
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"abc123"}`)
	})

	id, err := c.CreateSecret(context.Background(), "my post", map[string]string{
		"code_00.dart": "void main() {}\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	assert.Equal(t, false, gotBody["public"])
	assert.Equal(t, "my post", gotBody["description"])
	files := gotBody["files"].(map[string]any)
	file := files["code_00.dart"].(map[string]any)
	assert.Equal(t, "void main() {}\n", file["content"])
}

func TestCreateSecretMissingID(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"message":"Bad credentials"}`)
	})

	_, err := c.CreateSecret(context.Background(), "d", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no id")
}

func TestEmbedScript(t *testing.T) {
	got := EmbedScript("easylive1989", "abc123", "code_00.dart")
	assert.Equal(t, "<script src='https://gist.github.com/easylive1989/abc123.js?file=code_00.dart'></script>", got)
}

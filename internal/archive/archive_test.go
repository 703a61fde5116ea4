// Copyright easylive1989, 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/easylive1989/noteops/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.ArchiveConfig{Dir: t.TempDir(), MaxList: 5})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenRequiresDir(t *testing.T) {
	_, err := Open(types.ArchiveConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestSaveAndList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id1, err := s.Save(ctx, KindSummary, "202507", "pie chart body")
	require.NoError(t, err)
	id2, err := s.Save(ctx, KindDraft, "My Post", "# My Post\n\nbody")
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	entries, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, KindDraft, entries[0].Kind)
	assert.Equal(t, "My Post", entries[0].Label)
	assert.Equal(t, KindSummary, entries[1].Kind)
	assert.Equal(t, "pie chart body", entries[1].Content)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestListLimit(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		_, err := s.Save(ctx, KindTranscript, "memo", "text")
		require.NoError(t, err)
	}

	entries, err := s.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	// Zero limit uses the configured default.
	entries, err = s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestReopenPersists(t *testing.T) {
	dir := t.TempDir()
	cfg := types.ArchiveConfig{Dir: dir}

	s, err := Open(cfg)
	require.NoError(t, err)
	_, err = s.Save(context.Background(), KindSummary, "202506", "body")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(cfg)
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "202506", entries[0].Label)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(types.ArchiveConfig{Dir: dir})
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	_, err = s.Save(ctx, KindDraft, "Post", "content")
	require.NoError(t, err)

	require.NoError(t, s.ExportYAML(ctx))
	require.NoError(t, s.ExportJSON(ctx))

	var fromYAML []Entry
	data, err := os.ReadFile(filepath.Join(dir, "export.yaml"))
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	require.Len(t, fromYAML, 1)
	assert.Equal(t, "Post", fromYAML[0].Label)

	var fromJSON []Entry
	data, err = os.ReadFile(filepath.Join(dir, "export.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	require.Len(t, fromJSON, 1)
	assert.Equal(t, "content", fromJSON[0].Content)
}

// Copyright easylive1989, 2026. All rights reserved.

package postparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easylive1989/noteops/pkg/types"
)

func testPublishConfig() types.PublishConfig {
	return types.PublishConfig{
		SkipKeywords: []string{"功能分類", "新增時間", "最後編輯時間", "!["},
		TagPrefix:    "標籤",
		LanguageMap: map[string]string{
			"dart": "dart",
			"bash": "sh",
			"json": "json",
			"":     "txt",
		},
	}
}

func TestParseTitleTagsAndBody(t *testing.T) {
	input := strings.Join([]string{
		"# 畫面為什麼重繪了",
		"功能分類: Flutter",
		"新增時間: 2024/01/01",
		"",
		"標籤: flutter, widget",
		"內文第一段。",
	}, "\n")

	post, err := New(testPublishConfig()).Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "畫面為什麼重繪了", post.Title)
	assert.Equal(t, []string{"flutter", "widget"}, post.Tags)
	assert.Contains(t, post.Body, "# 畫面為什麼重繪了\n")
	assert.Contains(t, post.Body, "內文第一段。\n")
	assert.NotContains(t, post.Body, "功能分類")
	assert.NotContains(t, post.Body, "新增時間")
	assert.NotContains(t, post.Body, "標籤")
}

func TestParseExtractsSnippets(t *testing.T) {
	input := strings.Join([]string{
		"# A post",
		"before",
		"```dart",
		"void main() {}",
		"```",
		"between",
		"```bash",
		"echo hi",
		"```",
		"after",
	}, "\n")

	post, err := New(testPublishConfig()).Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, post.Snippets, 2)
	assert.Equal(t, "void main() {}\n", post.Snippets["code_00.dart"])
	assert.Equal(t, "echo hi\n", post.Snippets["code_01.sh"])

	// Fenced blocks are replaced by their snippet names, in place.
	wantBody := "# A post\nbefore\ncode_00.dart\nbetween\ncode_01.sh\nafter\n"
	assert.Equal(t, wantBody, post.Body)
}

func TestParseUnknownLanguageFallsBackToTxt(t *testing.T) {
	input := "# T\n```brainfuck\n+++\n```\n"
	post, err := New(testPublishConfig()).Parse(strings.NewReader(input))
	require.NoError(t, err)
	_, ok := post.Snippets["code_00.txt"]
	assert.True(t, ok)
}

func TestParseSkipsImageLines(t *testing.T) {
	input := "# T\n![screenshot](img.png)\ntext\n"
	post, err := New(testPublishConfig()).Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.NotContains(t, post.Body, "screenshot")
	assert.Contains(t, post.Body, "text\n")
}

func TestParseUnterminatedFence(t *testing.T) {
	input := "# T\n```dart\nvoid main() {}\n"
	_, err := New(testPublishConfig()).Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated code fence")
}

func TestParseEmptyInput(t *testing.T) {
	post, err := New(testPublishConfig()).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "", post.Title)
	assert.Empty(t, post.Tags)
	assert.Equal(t, "", post.Body)
}

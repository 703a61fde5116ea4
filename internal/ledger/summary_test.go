// Copyright easylive1989, 2026. All rights reserved.

package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easylive1989/noteops/pkg/types"
)

func TestRenderSummary(t *testing.T) {
	p := PreviousMonth(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC))
	rows := []types.Row{
		{Category: "飲食", Cash: dec(100)},
		{Category: "娛樂", Bank: dec(50)},
	}
	a := Aggregate(rows, testLabels())

	got := RenderSummary(p, a, testLabels())

	assert.Contains(t, got, `"娛樂" : -50`)
	assert.Contains(t, got, `"飲食" : -100`)
	assert.Contains(t, got, `"日常用品" : 0`)
	assert.Contains(t, got, `"水電管理費" : 0`)
	assert.Contains(t, got, "title 202507 分析 - 總額: -150")

	lines := strings.Split(got, "\n")
	require.GreaterOrEqual(t, len(lines), 7)
	assert.True(t, strings.HasPrefix(lines[0], "%%{init:"), "first line is the init directive")
	assert.Equal(t, "pie showData", lines[1])
}

func TestRenderSummaryNegatesStoredSigns(t *testing.T) {
	// Expenses are stored negative; the chart displays positive
	// magnitudes and the total is the negated bucket sum.
	p := PreviousMonth(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	rows := []types.Row{
		{Category: "娛樂", Cash: dec(-50)},
		{Category: "飲食", Cash: dec(-100)},
	}
	a := Aggregate(rows, testLabels())

	got := RenderSummary(p, a, testLabels())
	assert.Contains(t, got, `"娛樂" : 50`)
	assert.Contains(t, got, `"飲食" : 100`)
	assert.Contains(t, got, "總額: 150")
}

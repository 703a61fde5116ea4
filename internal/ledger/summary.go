// Copyright easylive1989, 2026. All rights reserved.

package ledger

import (
	"fmt"
	"strings"

	"github.com/easylive1989/noteops/pkg/types"
)

// summaryHeader is the mermaid init directive fixing the pie slice colors
// so the chart renders the same way month after month.
const summaryHeader = `%%{init: {'theme': 'base', 'themeVariables': { 'pie1': '#FF0000', 'pie2': '#FFFF00', 'pie3': '#00FF00', 'pie4': '#0000FF', 'pie5': '#800080', 'pie6': '#ff0000', 'pie7': '#FFA500'}}}%%`

// RenderSummary produces the mermaid pie-chart description for a period.
// Expenses are stored as negative amounts, so every figure is negated to
// display as a positive magnitude.
func RenderSummary(p Period, a types.Aggregate, labels types.CategoryLabels) string {
	var b strings.Builder
	b.WriteString(summaryHeader + "\n")
	b.WriteString("pie showData\n")
	fmt.Fprintf(&b, "        title %s 分析 - 總額: %s\n", p.Label(), a.Total().Neg())
	fmt.Fprintf(&b, "        \"%s\" : %s\n", labels.Entertainment, a.Entertainment.Neg())
	fmt.Fprintf(&b, "        \"%s\" : %s\n", labels.Sundries, a.Sundries.Neg())
	fmt.Fprintf(&b, "        \"%s\" : %s\n", labels.Food, a.Food.Neg())
	fmt.Fprintf(&b, "        \"%s\" : %s", labels.Bills, a.Bills.Neg())
	return b.String()
}

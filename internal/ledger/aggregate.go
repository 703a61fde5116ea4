// Copyright easylive1989, 2026. All rights reserved.

package ledger

import "github.com/easylive1989/noteops/pkg/types"

// Aggregate accumulates account grand totals over every row, and category
// buckets over the rows whose category matches one of the four tracked
// labels. Rows outside the tracked categories still count toward the
// account totals.
func Aggregate(rows []types.Row, labels types.CategoryLabels) types.Aggregate {
	var a types.Aggregate
	for _, r := range rows {
		a.PayerA = a.PayerA.Add(r.PayerA)
		a.PayerB = a.PayerB.Add(r.PayerB)
		a.Cash = a.Cash.Add(r.Cash)
		a.Bank = a.Bank.Add(r.Bank)

		line := r.PayerA.Add(r.PayerB).Add(r.Cash).Add(r.Bank)
		switch r.Category {
		case labels.Entertainment:
			a.Entertainment = a.Entertainment.Add(line)
		case labels.Bills:
			a.Bills = a.Bills.Add(line)
		case labels.Food:
			a.Food = a.Food.Add(line)
		case labels.Sundries:
			a.Sundries = a.Sundries.Add(line)
		}
	}
	return a
}

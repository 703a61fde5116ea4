// Copyright easylive1989, 2026. All rights reserved.

package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row is one ledger transaction as read from the remote store. Rows are
// immutable once queried; the rollover engine only ever creates new ones.
// Expenses are stored as negative amounts, income as positive.
type Row struct {
	Category string
	Date     time.Time
	PayerA   decimal.Decimal
	PayerB   decimal.Decimal
	Cash     decimal.Decimal
	Bank     decimal.Decimal
}

// Aggregate holds the per-account grand totals and the four category
// buckets accumulated over a set of rows. The account totals cover every
// row regardless of category; a bucket sums all four account fields of
// the rows matching its category label.
type Aggregate struct {
	PayerA decimal.Decimal
	PayerB decimal.Decimal
	Cash   decimal.Decimal
	Bank   decimal.Decimal

	Entertainment decimal.Decimal
	Bills         decimal.Decimal
	Food          decimal.Decimal
	Sundries      decimal.Decimal
}

// Total is the sum of the four category buckets. It deliberately ignores
// rows outside the tracked categories, so it is not the same figure as
// the account grand totals.
func (a Aggregate) Total() decimal.Decimal {
	return a.Entertainment.Add(a.Bills).Add(a.Food).Add(a.Sundries)
}

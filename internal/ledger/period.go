// Copyright easylive1989, 2026. All rights reserved.

// Package ledger implements the monthly rollover: querying the remote
// ledger for a month's transactions, aggregating per-account and
// per-category totals, rendering the pie-chart summary, and writing the
// close/open records that carry balances into the next month.
package ledger

import "time"

// Period is the closed date range covering one calendar month.
type Period struct {
	First time.Time
	Last  time.Time
}

// PreviousMonth returns the period for the calendar month strictly before
// ref. This is the canonical rollover target: a batch run on the 1st
// closes the month that just ended.
func PreviousMonth(ref time.Time) Period {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return Period{First: first, Last: first.AddDate(0, 1, -1)}
}

// Next returns the period for the month immediately after p.
func (p Period) Next() Period {
	first := p.First.AddDate(0, 1, 0)
	return Period{First: first, Last: first.AddDate(0, 1, -1)}
}

// Label formats the period as YYYYMM, the form used in record titles.
func (p Period) Label() string {
	return p.First.Format("200601")
}

// Days returns the number of days the period covers.
func (p Period) Days() int {
	return int(p.Last.Sub(p.First).Hours()/24) + 1
}

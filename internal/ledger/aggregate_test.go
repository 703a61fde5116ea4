// Copyright easylive1989, 2026. All rights reserved.

package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/easylive1989/noteops/pkg/types"
)

func testLabels() types.CategoryLabels {
	return types.CategoryLabels{
		Entertainment: "娛樂",
		Bills:         "水電管理費",
		Food:          "飲食",
		Sundries:      "日常用品",
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestAggregateBucketsAndTotals(t *testing.T) {
	rows := []types.Row{
		{Category: "飲食", Cash: dec(100)},
		{Category: "娛樂", Bank: dec(50)},
	}
	a := Aggregate(rows, testLabels())

	assert.True(t, a.Food.Equal(dec(100)), "food = %s", a.Food)
	assert.True(t, a.Entertainment.Equal(dec(50)), "entertainment = %s", a.Entertainment)
	assert.True(t, a.Bills.IsZero())
	assert.True(t, a.Sundries.IsZero())
	assert.True(t, a.Total().Equal(dec(150)), "total = %s", a.Total())

	assert.True(t, a.Cash.Equal(dec(100)))
	assert.True(t, a.Bank.Equal(dec(50)))
	assert.True(t, a.PayerA.IsZero())
	assert.True(t, a.PayerB.IsZero())
}

func TestAggregateTotalIsSumOfBuckets(t *testing.T) {
	rows := []types.Row{
		{Category: "娛樂", PayerA: dec(-120), Cash: dec(-30)},
		{Category: "水電管理費", Bank: dec(-900)},
		{Category: "飲食", PayerB: dec(-250)},
		{Category: "日常用品", Cash: dec(-75)},
		// Untracked categories count toward account totals only.
		{Category: "薪資", Bank: dec(50000)},
		{Category: "財務整理", PayerA: dec(1234)},
	}
	a := Aggregate(rows, testLabels())

	sum := a.Entertainment.Add(a.Bills).Add(a.Food).Add(a.Sundries)
	assert.True(t, a.Total().Equal(sum))
	assert.True(t, a.Total().Equal(dec(-1375)))

	// Account totals cover every row, tracked or not.
	assert.True(t, a.Bank.Equal(dec(49100)))
	assert.True(t, a.PayerA.Equal(dec(1114)))
}

func TestAggregateRowSpansAllAccounts(t *testing.T) {
	// One row can split an expense across all four accounts; the bucket
	// takes the whole line.
	rows := []types.Row{
		{Category: "飲食", PayerA: dec(-10), PayerB: dec(-20), Cash: dec(-30), Bank: dec(-40), Date: time.Now()},
	}
	a := Aggregate(rows, testLabels())
	assert.True(t, a.Food.Equal(dec(-100)))
}

func TestAggregateDecimalExactness(t *testing.T) {
	cents := decimal.RequireFromString("0.1")
	rows := make([]types.Row, 10)
	for i := range rows {
		rows[i] = types.Row{Category: "飲食", Cash: cents}
	}
	a := Aggregate(rows, testLabels())
	assert.True(t, a.Food.Equal(decimal.RequireFromString("1")), "ten dimes must sum to exactly 1, got %s", a.Food)
}

func TestAggregateEmpty(t *testing.T) {
	a := Aggregate(nil, testLabels())
	assert.True(t, a.Total().IsZero())
	assert.True(t, a.Cash.IsZero())
}

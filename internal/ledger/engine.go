// Copyright easylive1989, 2026. All rights reserved.

package ledger

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/easylive1989/noteops/internal/httputil"
	"github.com/easylive1989/noteops/internal/notion"
	"github.com/easylive1989/noteops/pkg/types"
)

// Gateway is the subset of the remote store API the engine uses.
type Gateway interface {
	QueryDatabase(ctx context.Context, databaseID string, filter notion.Filter) ([]notion.Page, error)
	CreatePage(ctx context.Context, databaseID string, properties map[string]notion.PropertyValue) (httputil.Result, error)
	PropertyNamesByType(ctx context.Context, databaseID string, propTypes ...string) (map[string]string, error)
}

// Engine runs the monthly rollover against the remote ledger store.
// It keeps no state between invocations; the remote store is the sole
// source of truth.
type Engine struct {
	gw  Gateway
	cfg types.LedgerConfig
	out io.Writer
}

// NewEngine builds an engine writing its run report to out.
func NewEngine(gw Gateway, cfg types.LedgerConfig, out io.Writer) *Engine {
	return &Engine{gw: gw, cfg: cfg, out: out}
}

// rangeFilter matches rows dated within the period.
func (e *Engine) rangeFilter(p Period) notion.Filter {
	return notion.And(
		notion.DateOnOrAfter(e.cfg.DateProperty, p.First),
		notion.DateOnOrBefore(e.cfg.DateProperty, p.Last),
	)
}

// chartFilter narrows the period's rows to the four tracked categories.
func (e *Engine) chartFilter(p Period) notion.Filter {
	c := e.cfg.Categories
	return notion.And(
		notion.DateOnOrAfter(e.cfg.DateProperty, p.First),
		notion.DateOnOrBefore(e.cfg.DateProperty, p.Last),
		notion.Or(
			notion.SelectEquals(e.cfg.CategoryProperty, c.Entertainment),
			notion.SelectEquals(e.cfg.CategoryProperty, c.Food),
			notion.SelectEquals(e.cfg.CategoryProperty, c.Sundries),
			notion.SelectEquals(e.cfg.CategoryProperty, c.Bills),
		),
	)
}

// FetchChartRows queries the period's rows in the tracked categories.
func (e *Engine) FetchChartRows(ctx context.Context, p Period) ([]types.Row, error) {
	return e.fetch(ctx, e.chartFilter(p))
}

// FetchAllRows queries every row of the period regardless of category.
func (e *Engine) FetchAllRows(ctx context.Context, p Period) ([]types.Row, error) {
	return e.fetch(ctx, e.rangeFilter(p))
}

func (e *Engine) fetch(ctx context.Context, filter notion.Filter) ([]types.Row, error) {
	pages, err := e.gw.QueryDatabase(ctx, e.cfg.LedgerDatabaseID, filter)
	if err != nil {
		return nil, err
	}
	rows := make([]types.Row, 0, len(pages))
	for _, pg := range pages {
		rows = append(rows, e.rowFromPage(pg))
	}
	return rows, nil
}

// rowFromPage maps a queried page onto a typed row. Absent amounts count
// as zero; a missing category or date leaves the zero value.
func (e *Engine) rowFromPage(pg notion.Page) types.Row {
	var row types.Row
	if p, ok := pg.Properties[e.cfg.CategoryProperty]; ok && p.Select != nil {
		row.Category = p.Select.Name
	}
	if p, ok := pg.Properties[e.cfg.DateProperty]; ok && p.Date != nil {
		if t, err := time.Parse("2006-01-02", p.Date.Start[:min(10, len(p.Date.Start))]); err == nil {
			row.Date = t
		}
	}
	row.PayerA = e.amount(pg, e.cfg.Accounts.PayerA)
	row.PayerB = e.amount(pg, e.cfg.Accounts.PayerB)
	row.Cash = e.amount(pg, e.cfg.Accounts.Cash)
	row.Bank = e.amount(pg, e.cfg.Accounts.Bank)
	return row
}

func (e *Engine) amount(pg notion.Page, property string) decimal.Decimal {
	if p, ok := pg.Properties[property]; ok && p.Number != nil {
		return decimal.NewFromFloat(*p.Number)
	}
	return decimal.Decimal{}
}

// PublishSummary aggregates the period's tracked categories, renders the
// pie-chart description, and writes it as a new record in the results
// database. The rendered summary is returned for display and archiving.
func (e *Engine) PublishSummary(ctx context.Context, p Period) (string, error) {
	rows, err := e.FetchChartRows(ctx, p)
	if err != nil {
		return "", fmt.Errorf("fetching chart rows: %w", err)
	}
	agg := Aggregate(rows, e.cfg.Categories)
	summary := RenderSummary(p, agg, e.cfg.Categories)

	names, err := e.gw.PropertyNamesByType(ctx, e.cfg.ResultsDatabaseID, "title", "rich_text")
	if err != nil {
		return "", fmt.Errorf("resolving results schema: %w", err)
	}
	titleProp, ok := names["title"]
	if !ok {
		return "", fmt.Errorf("results database %s has no title property", e.cfg.ResultsDatabaseID)
	}

	props := map[string]notion.PropertyValue{
		titleProp: notion.TitleProperty(p.Label()),
	}
	if textProp, ok := names["rich_text"]; ok {
		props[textProp] = notion.RichTextProperty(summary)
	}

	res, err := e.gw.CreatePage(ctx, e.cfg.ResultsDatabaseID, props)
	e.reportWrite("summary record", p.Label(), res, err)
	return summary, nil
}

// CloseBooks aggregates every row of the period and writes the close and
// open records. The two writes are independent: a failed close is
// reported and the open record is still attempted.
func (e *Engine) CloseBooks(ctx context.Context, p Period) (types.Aggregate, error) {
	rows, err := e.FetchAllRows(ctx, p)
	if err != nil {
		return types.Aggregate{}, fmt.Errorf("fetching period rows: %w", err)
	}
	agg := Aggregate(rows, e.cfg.Categories)

	names, err := e.gw.PropertyNamesByType(ctx, e.cfg.LedgerDatabaseID, "title")
	if err != nil {
		return types.Aggregate{}, fmt.Errorf("resolving ledger schema: %w", err)
	}
	titleProp, ok := names["title"]
	if !ok {
		return types.Aggregate{}, fmt.Errorf("ledger database %s has no title property", e.cfg.LedgerDatabaseID)
	}

	e.WriteCloseRecord(ctx, p, titleProp, agg)
	e.WriteOpenRecord(ctx, p.Next(), titleProp, agg)
	return agg, nil
}

// WriteCloseRecord creates the record that zeroes out the period: every
// account field is the negation of that period's grand total.
func (e *Engine) WriteCloseRecord(ctx context.Context, p Period, titleProp string, a types.Aggregate) {
	title := p.Label() + " " + e.cfg.CloseSuffix
	props := e.rolloverProperties(titleProp, title, a.PayerA.Neg(), a.PayerB.Neg(), a.Cash.Neg(), a.Bank.Neg())
	res, err := e.gw.CreatePage(ctx, e.cfg.LedgerDatabaseID, props)
	e.reportWrite("close record", title, res, err)
}

// WriteOpenRecord creates the record that carries the closing balances
// forward as the opening balances of the next period.
func (e *Engine) WriteOpenRecord(ctx context.Context, next Period, titleProp string, a types.Aggregate) {
	title := next.Label() + " " + e.cfg.OpenSuffix
	props := e.rolloverProperties(titleProp, title, a.PayerA, a.PayerB, a.Cash, a.Bank)
	res, err := e.gw.CreatePage(ctx, e.cfg.LedgerDatabaseID, props)
	e.reportWrite("open record", title, res, err)
}

func (e *Engine) rolloverProperties(titleProp, title string, payerA, payerB, cash, bank decimal.Decimal) map[string]notion.PropertyValue {
	return map[string]notion.PropertyValue{
		titleProp:              notion.TitleProperty(title),
		e.cfg.CategoryProperty: notion.SelectProperty(e.cfg.HousekeepingCategory),
		e.cfg.Accounts.PayerA:  notion.NumberProperty(payerA.InexactFloat64()),
		e.cfg.Accounts.PayerB:  notion.NumberProperty(payerB.InexactFloat64()),
		e.cfg.Accounts.Cash:    notion.NumberProperty(cash.InexactFloat64()),
		e.cfg.Accounts.Bank:    notion.NumberProperty(bank.InexactFloat64()),
	}
}

// reportWrite prints the outcome of one best-effort write. A non-success
// status is reported with the raw response body; the run continues.
func (e *Engine) reportWrite(what, title string, res httputil.Result, err error) {
	switch {
	case err != nil:
		fmt.Fprintf(e.out, "create %s failed: %v\n", what, err)
	case !res.OK():
		fmt.Fprintf(e.out, "create %s failed: HTTP %d\n%s\n", what, res.StatusCode, res.Body)
	default:
		fmt.Fprintf(e.out, "created %s: %s\n", what, title)
	}
}

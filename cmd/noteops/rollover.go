// Copyright easylive1989, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/easylive1989/noteops/internal/archive"
	"github.com/easylive1989/noteops/internal/ledger"
	"github.com/easylive1989/noteops/internal/notion"
)

var rolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Roll the expense ledger over for the previous month",
	Long: `Rollover summarizes the calendar month before today and closes its
books: a mermaid pie-chart summary is written to the results database,
then a close record (negated totals) and an open record for the next
month are written to the ledger itself.

Use --chart-only or --books-only to run half the rollover, and --date to
rerun for an earlier month.`,
	RunE: runRollover,
}

func init() {
	rolloverCmd.Flags().Bool("chart-only", false, "write only the pie-chart summary")
	rolloverCmd.Flags().Bool("books-only", false, "write only the close/open records")
	rolloverCmd.Flags().String("date", "", "reference date YYYY-MM-DD (default today; the month before it is rolled over)")

	rootCmd.AddCommand(rolloverCmd)
}

func runRollover(cmd *cobra.Command, args []string) error {
	chartOnly, _ := cmd.Flags().GetBool("chart-only")
	booksOnly, _ := cmd.Flags().GetBool("books-only")
	if chartOnly && booksOnly {
		return fmt.Errorf("--chart-only and --books-only are mutually exclusive")
	}

	ref := time.Now()
	if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fmt.Errorf("invalid --date %q: use YYYY-MM-DD", dateStr)
		}
		ref = parsed
	}

	cfg := ledgerConfig()
	if cfg.LedgerDatabaseID == "" {
		return fmt.Errorf("ledger.database_id is not configured")
	}
	if !booksOnly && cfg.ResultsDatabaseID == "" {
		return fmt.Errorf("ledger.results_database_id is not configured")
	}

	token, err := credential("NOTION_SECRET", "notion-secret")
	if err != nil {
		return err
	}

	ctx := context.Background()
	engine := ledger.NewEngine(notion.NewClient(token, cfg.HTTPConfig), cfg, os.Stdout)
	period := ledger.PreviousMonth(ref)
	fmt.Fprintf(os.Stdout, "rolling over %s (%s to %s)\n",
		period.Label(), period.First.Format("2006-01-02"), period.Last.Format("2006-01-02"))

	if !booksOnly {
		summary, err := engine.PublishSummary(ctx, period)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, summary)
		archiveSave(ctx, archive.KindSummary, period.Label(), summary)
	}

	if !chartOnly {
		if _, err := engine.CloseBooks(ctx, period); err != nil {
			return err
		}
	}
	return nil
}

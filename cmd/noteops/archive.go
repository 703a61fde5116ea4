// Copyright easylive1989, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/easylive1989/noteops/internal/archive"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect the local artifact archive (list, export)",
	Long: `Archive manages the local SQLite record of generated artifacts:
summaries, drafts, and transcripts. Archiving is off until archive.dir
is configured; the remote services stay the source of truth either way.`,
}

// --- list subcommand ---

var archiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent archived artifacts",
	RunE:  runArchiveList,
}

func runArchiveList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := archive.Open(archiveConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No archived artifacts.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-6s  %-10s  %-20s  %-30s  %s\n",
		"ID", "Kind", "Created", "Label", "Content")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, e := range entries {
		label := truncate(e.Label, 30)
		content := truncate(strings.ReplaceAll(e.Content, "\n", " "), 40)
		fmt.Fprintf(os.Stdout, "%-6d  %-10s  %-20s  %-30s  %s\n",
			e.ID, e.Kind, e.CreatedAt.Format("2006-01-02 15:04:05"), label, content)
	}

	fmt.Fprintf(os.Stdout, "\n%d entries\n", len(entries))
	return nil
}

// truncate shortens s to at most max display characters, counting runes
// so multibyte labels are never cut mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// --- export subcommand ---

var archiveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the archive to YAML or JSON",
	RunE:  runArchiveExport,
}

func runArchiveExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := archiveConfig()
	store, err := archive.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background()); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.yaml\n", cfg.Dir)
	case "json":
		if err := store.ExportJSON(context.Background()); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.json\n", cfg.Dir)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	return nil
}

func init() {
	archiveListCmd.Flags().Int("limit", 0, "maximum entries to show (0 = use default)")
	archiveExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	archiveCmd.AddCommand(archiveListCmd)
	archiveCmd.AddCommand(archiveExportCmd)
	rootCmd.AddCommand(archiveCmd)
}

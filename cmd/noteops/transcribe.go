// Copyright easylive1989, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/easylive1989/noteops/internal/archive"
	"github.com/easylive1989/noteops/internal/transcribe"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audio-file>",
	Short: "Transcribe an audio memo to text",
	Long: `Transcribe sends an audio file to the speech-to-text API and prints the
transcript. The transcript also replaces the configured output file so
the latest memo is always at a known path.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func init() {
	transcribeCmd.Flags().String("output", "", "transcript output file (overrides transcribe.output_file)")

	rootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	cfg := transcribeConfig()
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.OutputFile = output
	}

	token, err := credential("OPENAI_API_KEY", "openai-api-key")
	if err != nil {
		return err
	}

	ctx := context.Background()
	text, err := transcribe.NewClient(token, cfg).Transcribe(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, text)
	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing transcript: %w", err)
		}
	}
	archiveSave(ctx, archive.KindTranscript, args[0], text)
	return nil
}

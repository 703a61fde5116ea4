// Copyright easylive1989, 2026. All rights reserved.

// Package main is the entry point for the noteops CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/easylive1989/noteops/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credential fallbacks loaded from .secrets/ at startup.
var loadedSecrets *secrets.Store

// rootCmd is the base command for the noteops CLI.
var rootCmd = &cobra.Command{
	Use:   "noteops",
	Short: "Personal automation for notes, ledgers, and posts",
	Long: `noteops glues together the SaaS services behind one person's note-taking
workflow. It rolls a Notion expense ledger over at month end, converts
Notion pages and exports into Medium drafts with gist-hosted code
snippets, and transcribes audio memos.

Each workflow is a subcommand: rollover, publish, transcribe, and
archive.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; absence is not an error.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if keys := s.Keys(); len(keys) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./noteops.yaml or ~/.config/noteops/noteops.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("noteops")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "noteops"))
		}
	}

	viper.SetEnvPrefix("NOTEOPS")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

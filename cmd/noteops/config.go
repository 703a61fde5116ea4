// Copyright easylive1989, 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/easylive1989/noteops/internal/archive"
	"github.com/easylive1989/noteops/internal/secrets"
	"github.com/easylive1989/noteops/pkg/types"
)

const defaultUserAgent = "noteops/0.1"

// setDefaults registers the built-in configuration. The category and
// account labels default to the household taxonomy the tool was built
// for; a config file can rename all of them.
func setDefaults() {
	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("http.user_agent", defaultUserAgent)

	viper.SetDefault("ledger.date_property", "時間")
	viper.SetDefault("ledger.category_property", "分類")
	viper.SetDefault("ledger.housekeeping_category", "財務整理")
	viper.SetDefault("ledger.close_suffix", "關帳")
	viper.SetDefault("ledger.open_suffix", "開帳")
	viper.SetDefault("ledger.categories.entertainment", "娛樂")
	viper.SetDefault("ledger.categories.bills", "水電管理費")
	viper.SetDefault("ledger.categories.food", "飲食")
	viper.SetDefault("ledger.categories.sundries", "日常用品")
	viper.SetDefault("ledger.accounts.payer_a", "Paul")
	viper.SetDefault("ledger.accounts.payer_b", "Lily")
	viper.SetDefault("ledger.accounts.cash", "現金")
	viper.SetDefault("ledger.accounts.bank", "銀行存款")

	viper.SetDefault("publish.skip_keywords", []string{"功能分類", "新增時間", "最後編輯時間", "!["})
	viper.SetDefault("publish.tag_prefix", "標籤")
	viper.SetDefault("publish.languages", map[string]string{
		"dart":   "dart",
		"go":     "go",
		"python": "py",
		"shell":  "sh",
		"yaml":   "yaml",
		"json":   "json",
	})

	viper.SetDefault("transcribe.model", "whisper-1")
	viper.SetDefault("transcribe.output_file", "transcript.txt")

	viper.SetDefault("archive.dir", "")
	viper.SetDefault("archive.max_list", 20)
}

func httpConfig() types.HTTPConfig {
	return types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}
}

func ledgerConfig() types.LedgerConfig {
	return types.LedgerConfig{
		HTTPConfig:           httpConfig(),
		LedgerDatabaseID:     viper.GetString("ledger.database_id"),
		ResultsDatabaseID:    viper.GetString("ledger.results_database_id"),
		DateProperty:         viper.GetString("ledger.date_property"),
		CategoryProperty:     viper.GetString("ledger.category_property"),
		HousekeepingCategory: viper.GetString("ledger.housekeeping_category"),
		CloseSuffix:          viper.GetString("ledger.close_suffix"),
		OpenSuffix:           viper.GetString("ledger.open_suffix"),
		Categories: types.CategoryLabels{
			Entertainment: viper.GetString("ledger.categories.entertainment"),
			Bills:         viper.GetString("ledger.categories.bills"),
			Food:          viper.GetString("ledger.categories.food"),
			Sundries:      viper.GetString("ledger.categories.sundries"),
		},
		Accounts: types.AccountLabels{
			PayerA: viper.GetString("ledger.accounts.payer_a"),
			PayerB: viper.GetString("ledger.accounts.payer_b"),
			Cash:   viper.GetString("ledger.accounts.cash"),
			Bank:   viper.GetString("ledger.accounts.bank"),
		},
	}
}

func publishConfig() types.PublishConfig {
	return types.PublishConfig{
		HTTPConfig:   httpConfig(),
		SkipKeywords: viper.GetStringSlice("publish.skip_keywords"),
		TagPrefix:    viper.GetString("publish.tag_prefix"),
		LanguageMap:  viper.GetStringMapString("publish.languages"),
		GistUser:     viper.GetString("publish.gist_user"),
	}
}

func transcribeConfig() types.TranscribeConfig {
	return types.TranscribeConfig{
		HTTPConfig: httpConfig(),
		Model:      viper.GetString("transcribe.model"),
		OutputFile: viper.GetString("transcribe.output_file"),
	}
}

func archiveConfig() types.ArchiveConfig {
	return types.ArchiveConfig{
		Dir:     viper.GetString("archive.dir"),
		MaxList: viper.GetInt("archive.max_list"),
	}
}

// credential resolves one API credential: environment variable first,
// .secrets/ file second. Commands call this before any network work so a
// missing credential fails fast.
func credential(envVar, fileKey string) (string, error) {
	if loadedSecrets == nil {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return "", err
		}
		loadedSecrets = s
	}
	return loadedSecrets.Resolve(envVar, fileKey)
}

// archiveSave records an artifact in the local archive when one is
// configured. Archive trouble never fails the run.
func archiveSave(ctx context.Context, kind archive.Kind, label, content string) {
	cfg := archiveConfig()
	if cfg.Dir == "" {
		return
	}
	store, err := archive.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: archive unavailable: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.Save(ctx, kind, label, content); err != nil {
		fmt.Fprintf(os.Stderr, "warning: archive write failed: %v\n", err)
	}
}

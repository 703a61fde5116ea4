// Copyright easylive1989, 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that call remote APIs.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "noteops/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// CategoryLabels names the four expense categories tracked by the
// pie-chart summary. The labels are whatever the remote ledger uses as
// select values; defaults match the household taxonomy the tool was
// built for.
type CategoryLabels struct {
	Entertainment string `json:"entertainment" yaml:"entertainment"`
	Bills         string `json:"bills" yaml:"bills"`
	Food          string `json:"food" yaml:"food"`
	Sundries      string `json:"sundries" yaml:"sundries"`
}

// AccountLabels names the four numeric amount columns of the ledger
// database: one per payer plus cash and bank.
type AccountLabels struct {
	PayerA string `json:"payer_a" yaml:"payer_a"`
	PayerB string `json:"payer_b" yaml:"payer_b"`
	Cash   string `json:"cash" yaml:"cash"`
	Bank   string `json:"bank" yaml:"bank"`
}

// LedgerConfig holds settings for the monthly rollover stage.
type LedgerConfig struct {
	HTTPConfig `yaml:",inline"`

	// LedgerDatabaseID is the remote database holding transaction rows.
	LedgerDatabaseID string `json:"ledger_database_id" yaml:"ledger_database_id"`

	// ResultsDatabaseID is the remote database receiving summary records.
	ResultsDatabaseID string `json:"results_database_id" yaml:"results_database_id"`

	// DateProperty is the name of the ledger's date column.
	DateProperty string `json:"date_property" yaml:"date_property"`

	// CategoryProperty is the name of the ledger's category select column.
	CategoryProperty string `json:"category_property" yaml:"category_property"`

	// HousekeepingCategory is the category assigned to generated
	// close/open records so they are excluded from ordinary analysis.
	HousekeepingCategory string `json:"housekeeping_category" yaml:"housekeeping_category"`

	// CloseSuffix and OpenSuffix are appended to the period label in the
	// titles of the close and open records.
	CloseSuffix string `json:"close_suffix" yaml:"close_suffix"`
	OpenSuffix  string `json:"open_suffix" yaml:"open_suffix"`

	Categories CategoryLabels `json:"categories" yaml:"categories"`
	Accounts   AccountLabels  `json:"accounts" yaml:"accounts"`
}

// PublishConfig holds settings for converting notes into blog drafts.
type PublishConfig struct {
	HTTPConfig `yaml:",inline"`

	// SkipKeywords lists line prefixes dropped from exported note files
	// (page metadata such as creation timestamps).
	SkipKeywords []string `json:"skip_keywords" yaml:"skip_keywords"`

	// TagPrefix marks the line of an exported note that carries the
	// comma-separated post tags.
	TagPrefix string `json:"tag_prefix" yaml:"tag_prefix"`

	// LanguageMap maps fenced-code-block language tags to snippet file
	// extensions. Unknown languages fall back to "txt".
	LanguageMap map[string]string `json:"language_map" yaml:"language_map"`

	// GistUser is the account name used when building gist embed URLs.
	GistUser string `json:"gist_user" yaml:"gist_user"`
}

// TranscribeConfig holds settings for the speech-to-text stage.
type TranscribeConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the transcription model identifier (e.g. "whisper-1").
	Model string `json:"model" yaml:"model"`

	// OutputFile is where the transcript is written, replacing any
	// previous run's output.
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// ArchiveConfig holds settings for the local artifact archive.
// An empty Dir disables archiving entirely.
type ArchiveConfig struct {
	Dir string `json:"dir" yaml:"dir"`

	// MaxList is the default number of entries shown by listings.
	MaxList int `json:"max_list" yaml:"max_list"`
}

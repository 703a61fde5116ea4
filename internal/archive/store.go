// Copyright easylive1989, 2026. All rights reserved.

// Package archive keeps a local copy of every artifact the tool produces
// (chart summaries, post drafts, transcripts) in a SQLite database, so a
// run can be audited after the remote services have moved on.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/easylive1989/noteops/pkg/types"
)

const dbFile = "noteops.db"

// Kind classifies an archived artifact.
type Kind string

const (
	KindSummary    Kind = "summary"
	KindDraft      Kind = "draft"
	KindTranscript Kind = "transcript"
)

// Entry is one archived artifact.
type Entry struct {
	ID        int64     `json:"id" yaml:"id"`
	Kind      Kind      `json:"kind" yaml:"kind"`
	Label     string    `json:"label" yaml:"label"`
	Content   string    `json:"content" yaml:"content"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Store manages the archive SQLite database.
type Store struct {
	db      *sql.DB
	dir     string
	maxList int
}

// Open opens or creates the archive database at cfg.Dir/noteops.db,
// creating the schema if needed.
func Open(cfg types.ArchiveConfig) (*Store, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("archive directory is not configured")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxList := cfg.MaxList
	if maxList <= 0 {
		maxList = 20
	}

	s := &Store{db: db, dir: cfg.Dir, maxList: maxList}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		label TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	_, err = s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_entries_kind ON entries(kind)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Save stores one artifact and returns its row ID.
func (s *Store) Save(ctx context.Context, kind Kind, label, content string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (kind, label, content, created_at) VALUES (?, ?, ?, ?)`,
		string(kind), label, content, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading entry id: %w", err)
	}
	return id, nil
}

// List returns the newest entries, most recent first. A limit of zero
// falls back to the configured default.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxList
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, label, content, created_at FROM entries
		 ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var kind, created string
		if err := rows.Scan(&e.ID, &kind, &e.Label, &e.Content, &created); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.Kind = Kind(kind)
		e.CreatedAt, err = time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("parsing entry timestamp: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

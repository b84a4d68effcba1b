// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index persists extracted records in a SQLite database so runs
// can be compared and records queried without re-parsing the PDF.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mkutashi/standards-extractor/pkg/types"
)

const dbFile = "standards.db"

// Store manages the record index SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the index database at indexDir/standards.db
// and creates the schema if it does not exist.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
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
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			created_at TEXT NOT NULL,
			records INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			operating_name TEXT,
			legal_name TEXT,
			website TEXT,
			document_name TEXT,
			standard_title TEXT,
			publishing_date TEXT,
			classification TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_run_id ON records(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_records_document ON records(document_name)`,
		`CREATE INDEX IF NOT EXISTS idx_records_date ON records(publishing_date)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Ingest stores one run's records under a new run row and returns the
// run ID. The whole ingest is a single transaction.
func (s *Store) Ingest(ctx context.Context, source string, records []types.Record) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (source, created_at, records) VALUES (?, ?, ?)`,
		source, time.Now().UTC().Format(time.RFC3339), len(records))
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records
		(run_id, operating_name, legal_name, website, document_name,
		 standard_title, publishing_date, classification)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			runID, r.OperatingName, r.LegalName, r.Website,
			r.DocumentName, r.StandardTitle, r.PublishingDate, r.Classification); err != nil {
			return 0, fmt.Errorf("inserting record %q: %w", r.DocumentName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing ingest: %w", err)
	}
	return runID, nil
}

// QueryOptions filters index queries. Zero-value fields are ignored.
type QueryOptions struct {
	// Name matches a substring of the operating or legal name.
	Name string

	// Document matches a prefix of the document name.
	Document string

	// Date matches the publishing date exactly.
	Date string

	// RunID restricts results to one ingest run.
	RunID int64

	// MaxResults caps the result count; the store default applies
	// when zero.
	MaxResults int
}

// IsEmpty reports whether no filter is set.
func (o QueryOptions) IsEmpty() bool {
	return o.Name == "" && o.Document == "" && o.Date == "" && o.RunID == 0
}

// StoredRecord is a record row joined with its run provenance.
type StoredRecord struct {
	types.Record
	RunID  int64  `json:"run_id"`
	Source string `json:"source"`
}

// Query returns stored records matching the options, newest runs first.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]StoredRecord, error) {
	query := `SELECT r.run_id, runs.source, r.operating_name, r.legal_name,
		r.website, r.document_name, r.standard_title, r.publishing_date,
		r.classification
		FROM records r JOIN runs ON runs.id = r.run_id WHERE 1=1`
	var args []interface{}

	if opts.Name != "" {
		query += ` AND (r.operating_name LIKE ? OR r.legal_name LIKE ?)`
		pattern := "%" + opts.Name + "%"
		args = append(args, pattern, pattern)
	}
	if opts.Document != "" {
		query += ` AND r.document_name LIKE ?`
		args = append(args, opts.Document+"%")
	}
	if opts.Date != "" {
		query += ` AND r.publishing_date = ?`
		args = append(args, opts.Date)
	}
	if opts.RunID != 0 {
		query += ` AND r.run_id = ?`
		args = append(args, opts.RunID)
	}

	limit := opts.MaxResults
	if limit <= 0 {
		limit = s.maxResults
	}
	query += ` ORDER BY r.run_id DESC, r.id ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var results []StoredRecord
	for rows.Next() {
		var sr StoredRecord
		if err := rows.Scan(&sr.RunID, &sr.Source, &sr.OperatingName,
			&sr.LegalName, &sr.Website, &sr.DocumentName,
			&sr.StandardTitle, &sr.PublishingDate, &sr.Classification); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		results = append(results, sr)
	}
	return results, rows.Err()
}

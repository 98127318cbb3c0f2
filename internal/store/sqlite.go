// Package store persists company classifications in SQLite. The classifier
// only reads manual overrides and upserts automatic results; overrides are
// written by humans through other tooling.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ovsov/jobgrader/internal/company"
)

type SQLite struct {
	db *sql.DB
}

// Open opens (creating when needed) the classification database at path.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS company_classifications (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		company_name TEXT NOT NULL,
		source       TEXT NOT NULL DEFAULT 'auto',
		type         TEXT NOT NULL,
		confidence   REAL NOT NULL,
		signals      TEXT DEFAULT '',
		updated_at   DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(company_name, source)
	);
	CREATE INDEX IF NOT EXISTS idx_company_classifications_name ON company_classifications(company_name);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// ManualOverride returns the human-supplied classification for the exact
// company name, or nil when none exists.
func (s *SQLite) ManualOverride(companyName string) (*company.Classification, error) {
	row := s.db.QueryRow(
		`SELECT type, confidence, signals FROM company_classifications
		 WHERE company_name = ? AND source = 'manual'`,
		companyName,
	)

	var (
		typ        string
		confidence float64
		signals    string
	)
	if err := row.Scan(&typ, &confidence, &signals); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if confidence < 0 || confidence > 1 {
		return nil, fmt.Errorf("stored confidence %v for %q out of range", confidence, companyName)
	}

	decoded := map[string]company.Signal{}
	if signals != "" {
		if err := json.Unmarshal([]byte(signals), &decoded); err != nil {
			return nil, fmt.Errorf("decoding stored signals for %q: %w", companyName, err)
		}
	}

	return company.NewClassification(company.Type(typ), confidence, decoded, company.SourceManual), nil
}

// UpsertAuto inserts or updates the automatic classification for a company.
// The UNIQUE(company_name, source) constraint makes repeated writes
// idempotent.
func (s *SQLite) UpsertAuto(companyName string, c *company.Classification) error {
	signals, err := json.Marshal(c.Signals)
	if err != nil {
		return fmt.Errorf("encoding signals for %q: %w", companyName, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO company_classifications (company_name, source, type, confidence, signals, updated_at)
		 VALUES (?, 'auto', ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(company_name, source) DO UPDATE SET
			type = excluded.type,
			confidence = excluded.confidence,
			signals = excluded.signals,
			updated_at = CURRENT_TIMESTAMP`,
		companyName, string(c.Type), c.Confidence, string(signals),
	)
	return err
}

// AutoCount reports how many automatic classifications are stored. Used by
// tests and the score command summary.
func (s *SQLite) AutoCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM company_classifications WHERE source = 'auto'`).Scan(&count)
	return count, err
}

// PutManual stores a manual override. This is test and tooling surface; the
// classifier itself never writes overrides.
func (s *SQLite) PutManual(companyName string, c *company.Classification) error {
	signals, err := json.Marshal(c.Signals)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO company_classifications (company_name, source, type, confidence, signals, updated_at)
		 VALUES (?, 'manual', ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(company_name, source) DO UPDATE SET
			type = excluded.type,
			confidence = excluded.confidence,
			signals = excluded.signals,
			updated_at = CURRENT_TIMESTAMP`,
		companyName, string(c.Type), c.Confidence, string(signals),
	)
	return err
}

package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mvp-joe/project-lexicon/internal/extract"
)

// DB wraps the optional SQLite backend: a records table holding the full
// JSON form of every record plus an FTS5 virtual table for BM25-ranked
// full-text search. This complements the JSON artifacts for corpora too
// large to grep.
type DB struct {
	db *sql.DB
}

// OpenDB opens (or creates) the SQLite database and ensures the schema.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db: db}, nil
}

// createSchema creates the records table and the FTS5 index. All schema
// creation succeeds or fails together.
func createSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback() // safe to call even after commit

	createRecords := `
		CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			full_path TEXT NOT NULL,
			summary TEXT NOT NULL DEFAULT '',
			data TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)
	`
	if _, err := tx.Exec(createRecords); err != nil {
		return fmt.Errorf("failed to create records table: %w", err)
	}

	if _, err := tx.Exec("CREATE INDEX IF NOT EXISTS idx_records_full_path ON records(full_path)"); err != nil {
		return fmt.Errorf("failed to create path index: %w", err)
	}
	if _, err := tx.Exec("CREATE INDEX IF NOT EXISTS idx_records_kind ON records(kind)"); err != nil {
		return fmt.Errorf("failed to create kind index: %w", err)
	}

	// FTS5 virtual table for keyword search with BM25 ranking and
	// snippet extraction. record_id is carried but not searched.
	createFTS := `
		CREATE VIRTUAL TABLE IF NOT EXISTS records_fts USING fts5(
			record_id UNINDEXED,
			name,
			full_path,
			text,
			tokenize = 'unicode61 remove_diacritics 0'
		)
	`
	if _, err := tx.Exec(createFTS); err != nil {
		return fmt.Errorf("failed to create FTS5 index: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}
	return nil
}

// ReplaceRecords replaces the stored collection with a fresh extraction
// run, records table and FTS5 index together in one transaction.
func (d *DB) ReplaceRecords(records []*extract.Record) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM records_fts"); err != nil {
		return fmt.Errorf("failed to clear FTS5 index: %w", err)
	}

	insertRecord, err := tx.Prepare(`
		INSERT INTO records (id, name, kind, full_path, summary, data, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, datetime('now'))
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare record insert: %w", err)
	}
	defer insertRecord.Close()

	insertFTS, err := tx.Prepare(`
		INSERT INTO records_fts (record_id, name, full_path, text)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare FTS5 insert: %w", err)
	}
	defer insertFTS.Close()

	for _, rec := range records {
		if rec == nil {
			continue
		}
		// The reduced form is stored; the original node reference stays
		// in the JSON artifacts only.
		data, err := json.Marshal(rec.Reduced())
		if err != nil {
			return fmt.Errorf("failed to marshal record %d: %w", rec.ID, err)
		}

		if _, err := insertRecord.Exec(rec.ID, rec.Name, rec.Kind, rec.FullPath, rec.Documentation.Summary, string(data)); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", rec.ID, err)
		}
		if _, err := insertFTS.Exec(rec.ID, rec.Name, rec.FullPath, ftsText(rec)); err != nil {
			return fmt.Errorf("failed to insert FTS5 entry for record %d: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}
	return nil
}

// ftsText assembles the searchable text for one record.
func ftsText(rec *extract.Record) string {
	parts := []string{rec.Documentation.Summary, rec.Documentation.Description}
	for _, sig := range rec.Signatures {
		parts = append(parts, sig.Signature)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// FTSResult is one full-text search hit.
type FTSResult struct {
	Record  *extract.Record
	Rank    float64 // BM25 rank (more negative is better in SQLite)
	Snippet string  // text snippet with <mark> highlighting
}

// SearchText performs full-text search over the stored records.
//
// Query syntax is FTS5: simple keywords, "quoted phrases", AND/OR/NOT,
// and prefix* matching. Results come back in BM25 order.
func (d *DB) SearchText(query string, kind string, limit int) ([]*FTSResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 15
	}

	sqlQuery := `
		SELECT
			records_fts.record_id,
			rank,
			snippet(records_fts, 3, '<mark>', '</mark>', '...', 32) as snippet,
			records.data
		FROM records_fts
		INNER JOIN records ON records_fts.record_id = records.id
		WHERE records_fts MATCH ?
	`

	args := []interface{}{query}
	if kind != "" {
		sqlQuery += " AND records.kind = ?"
		args = append(args, kind)
	}
	sqlQuery += " ORDER BY rank LIMIT ?"
	args = append(args, limit)

	rows, err := d.db.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query FTS5: %w", err)
	}
	defer rows.Close()

	var results []*FTSResult
	for rows.Next() {
		var (
			recordID int
			rank     float64
			snippet  string
			data     string
		)
		if err := rows.Scan(&recordID, &rank, &snippet, &data); err != nil {
			return nil, fmt.Errorf("failed to scan FTS5 result: %w", err)
		}

		var rec extract.Record
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record %d: %w", recordID, err)
		}

		results = append(results, &FTSResult{
			Record:  &rec,
			Rank:    rank,
			Snippet: snippet,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating FTS5 results: %w", err)
	}
	return results, nil
}

// EscapeFTSQuery escapes FTS5 special characters in user input so a bare
// path or identifier can be searched literally.
func EscapeFTSQuery(input string) string {
	return `"` + strings.ReplaceAll(input, `"`, `""`) + `"`
}

// DBStats summarizes the stored collection.
type DBStats struct {
	TotalRecords int
	ByKind       map[string]int
}

// Stats retrieves record counts from the database.
func (d *DB) Stats() (*DBStats, error) {
	stats := &DBStats{ByKind: make(map[string]int)}

	if err := d.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&stats.TotalRecords); err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	rows, err := d.db.Query("SELECT kind, COUNT(*) FROM records GROUP BY kind")
	if err != nil {
		return nil, fmt.Errorf("failed to count records by kind: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("failed to scan kind count: %w", err)
		}
		stats.ByKind[kind] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating kind counts: %w", err)
	}
	return stats, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

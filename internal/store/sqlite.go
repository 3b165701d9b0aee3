package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
	"pubsite/internal/publication"
)

// DB wraps the SQLite record cache. The cache is disposable: it is always
// reconstructible from the canonical JSONL file via RebuildFrom.
type DB struct {
	db *sql.DB
}

// selectRecordFields is the standard field list for SELECT queries.
const selectRecordFields = `group_key, citation, doi, url, pub_year, pub_month, pub_day`

// OpenDB opens or creates the SQLite cache at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			group_key TEXT NOT NULL,
			citation TEXT NOT NULL,
			doi TEXT,
			url TEXT,
			pub_year INTEGER NOT NULL,
			pub_month INTEGER,
			pub_day INTEGER
		);

		CREATE INDEX IF NOT EXISTS idx_records_doi ON records(doi)
			WHERE doi IS NOT NULL AND doi != '';

		CREATE INDEX IF NOT EXISTS idx_records_group ON records(group_key);
	`
	_, err := db.Exec(schema)
	return err
}

// RebuildFrom replaces the cache contents with the given records.
func (d *DB) RebuildFrom(records []publication.Record) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("starting rebuild transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM records`); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO records (` + selectRecordFields + `) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		group := rec.Group
		if !publication.ValidGroup(group) {
			group = publication.GroupJournals
		}
		_, err := stmt.Exec(group, rec.Citation, rec.DOI, rec.URL,
			rec.Date.Year, rec.Date.Month, rec.Date.Day)
		if err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// ListGroup returns the records of one group ordered chronologically,
// ties broken by insertion order.
func (d *DB) ListGroup(key string) ([]publication.Record, error) {
	rows, err := d.db.Query(`SELECT `+selectRecordFields+` FROM records
		WHERE group_key = ?
		ORDER BY pub_year, pub_month, pub_day, rowid`, key)
	if err != nil {
		return nil, fmt.Errorf("querying group %s: %w", key, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// CountByGroup returns record counts keyed by group.
func (d *DB) CountByGroup() (map[string]int, error) {
	rows, err := d.db.Query(`SELECT group_key, COUNT(*) FROM records GROUP BY group_key`)
	if err != nil {
		return nil, fmt.Errorf("counting records: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[key] = n
	}
	return counts, rows.Err()
}

// Count returns the total number of records in the cache.
func (d *DB) Count() (int, error) {
	var n int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

func scanRecords(rows *sql.Rows) ([]publication.Record, error) {
	var records []publication.Record
	for rows.Next() {
		var rec publication.Record
		var doi, url sql.NullString
		var month, day sql.NullInt64
		err := rows.Scan(&rec.Group, &rec.Citation, &doi, &url,
			&rec.Date.Year, &month, &day)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		rec.DOI = doi.String
		rec.URL = url.String
		rec.Date.Month = int(month.Int64)
		rec.Date.Day = int(day.Int64)
		records = append(records, rec)
	}
	return records, rows.Err()
}

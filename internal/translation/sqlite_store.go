package translation

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const createTranslationsSQL = `CREATE TABLE IF NOT EXISTS translations (
	word        TEXT PRIMARY KEY,
	translation TEXT NOT NULL
)`

// SQLiteStore keeps the cache in a SQLite database. The database is opened
// for each Load and Save, since both happen only once per run.
type SQLiteStore struct {
	path string
}

// NewSQLiteStore creates a store for the database file at path
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Location returns the database path
func (s *SQLiteStore) Location() string {
	return s.path
}

func (s *SQLiteStore) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTranslationsSQL); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Load reads all translations. A new database starts out empty.
func (s *SQLiteStore) Load() (map[string]string, error) {
	entries := make(map[string]string)

	db, err := s.open()
	if err != nil {
		return entries, fmt.Errorf("%w: %s: %v", ErrCorruptCache, s.path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT word, translation FROM translations`)
	if err != nil {
		return entries, fmt.Errorf("%w: %s: %v", ErrCorruptCache, s.path, err)
	}
	defer rows.Close()

	for rows.Next() {
		var word, translation string
		if err := rows.Scan(&word, &translation); err != nil {
			return make(map[string]string), fmt.Errorf("%w: %s: %v", ErrCorruptCache, s.path, err)
		}
		entries[word] = translation
	}
	if err := rows.Err(); err != nil {
		return make(map[string]string), fmt.Errorf("%w: %s: %v", ErrCorruptCache, s.path, err)
	}

	return entries, nil
}

// Save replaces the table contents with entries in one transaction
func (s *SQLiteStore) Save(entries map[string]string) error {
	db, err := s.open()
	if err != nil {
		return fmt.Errorf("failed to open cache database: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM translations`); err != nil {
		return fmt.Errorf("failed to clear translations: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO translations (word, translation) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for word, translation := range entries {
		if _, err := stmt.Exec(word, translation); err != nil {
			return fmt.Errorf("failed to insert '%s': %w", word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit translations: %w", err)
	}
	return nil
}

// README: History store backed by an embedded SQLite database file.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS itinerary_history (
    user_key    TEXT NOT NULL,
    user_name   TEXT NOT NULL,
    seq         INTEGER NOT NULL,
    city        TEXT NOT NULL,
    days        INTEGER NOT NULL,
    budget      INTEGER NOT NULL,
    preferences TEXT NOT NULL DEFAULT '',
    itinerary   TEXT NOT NULL,
    created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (user_key, seq)
);`

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: ensure dir %s: %w", ErrStorage, dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrStorage, path, err)
	}
	// A single connection keeps writers serialized inside the process.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: create schema: %w", ErrStorage, err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context, user string) ([]Record, error) {
	key, err := Key(user)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT city, days, budget, preferences, itinerary
		FROM itinerary_history
		WHERE user_key = ?
		ORDER BY seq ASC`, key,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query history: %w", ErrStorage, err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.City, &r.Days, &r.Budget, &r.Preferences, &r.Itinerary); err != nil {
			return nil, fmt.Errorf("%w: scan history: %w", ErrStorage, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate history: %w", ErrStorage, err)
	}
	return records, nil
}

// Save upserts rows by seq, keeping created_at of records already stored.
func (s *SQLiteStore) Save(ctx context.Context, user string, records []Record) error {
	key, err := Key(user)
	if err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrStorage, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM itinerary_history WHERE user_key = ? AND seq > ?`, key, len(records)); err != nil {
		return fmt.Errorf("%w: trim history: %w", ErrStorage, err)
	}
	for i, r := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO itinerary_history (user_key, user_name, seq, city, days, budget, preferences, itinerary)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT (user_key, seq) DO UPDATE SET
				user_name = excluded.user_name,
				city = excluded.city,
				days = excluded.days,
				budget = excluded.budget,
				preferences = excluded.preferences,
				itinerary = excluded.itinerary`,
			key, user, i+1, r.City, r.Days, r.Budget, r.Preferences, r.Itinerary,
		)
		if err != nil {
			return fmt.Errorf("%w: upsert history: %w", ErrStorage, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrStorage, err)
	}
	return nil
}

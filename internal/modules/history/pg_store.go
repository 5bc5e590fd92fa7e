// README: History store backed by PostgreSQL (one row per record, ordered by seq).
package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Load(ctx context.Context, user string) ([]Record, error) {
	key, err := Key(user)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.Query(ctx, `
		SELECT city, days, budget, preferences, itinerary
		FROM itinerary_history
		WHERE user_key = $1
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

// Save makes the user's rows match records in a single transaction. Rows are
// upserted by seq so created_at keeps the time each record was first stored.
func (s *PGStore) Save(ctx context.Context, user string, records []Record) error {
	key, err := Key(user)
	if err != nil {
		return err
	}
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrStorage, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM itinerary_history WHERE user_key = $1 AND seq > $2`, key, len(records)); err != nil {
		return fmt.Errorf("%w: trim history: %w", ErrStorage, err)
	}

	batch := &pgx.Batch{}
	for i, r := range records {
		batch.Queue(`
			INSERT INTO itinerary_history (
				user_key, user_name, seq, city, days, budget, preferences, itinerary
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (user_key, seq) DO UPDATE SET
				user_name = EXCLUDED.user_name,
				city = EXCLUDED.city,
				days = EXCLUDED.days,
				budget = EXCLUDED.budget,
				preferences = EXCLUDED.preferences,
				itinerary = EXCLUDED.itinerary`,
			key, user, i+1, r.City, r.Days, r.Budget, r.Preferences, r.Itinerary,
		)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("%w: upsert history: %w", ErrStorage, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrStorage, err)
	}
	return nil
}

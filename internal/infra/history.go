// README: Selects and opens the configured history backend.
package infra

import (
	"context"
	"fmt"
	"log"

	"tripmate/internal/config"
	"tripmate/internal/modules/history"
)

// NewHistoryStore opens the backend named by cfg.History.Backend. The returned
// close function releases connections and is never nil.
func NewHistoryStore(ctx context.Context, cfg config.Config) (history.Store, func(), error) {
	noop := func() {}
	switch cfg.History.Backend {
	case "file", "":
		s, err := history.NewFileStore(cfg.History.Dir, cfg.History.LegacyKeys)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("history: file backend in %s (legacy keys: %v)", cfg.History.Dir, cfg.History.LegacyKeys)
		return s, noop, nil
	case "postgres":
		pool, err := NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("history: postgres backend")
		return history.NewPGStore(pool), pool.Close, nil
	case "redis":
		rdb, err := NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("history: redis backend at %s", cfg.Redis.Addr)
		return history.NewRedisStore(rdb), func() { _ = rdb.Close() }, nil
	case "sqlite":
		s, err := history.NewSQLiteStore(cfg.History.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("history: sqlite backend at %s", cfg.History.SQLitePath)
		return s, func() { _ = s.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unsupported history backend %q", cfg.History.Backend)
	}
}

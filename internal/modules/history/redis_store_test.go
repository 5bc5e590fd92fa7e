// README: Redis store tests; skipped unless TRIPMATE_TEST_REDIS is set.
package history

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	addr := os.Getenv("TRIPMATE_TEST_REDIS")
	if addr == "" {
		t.Skip("TRIPMATE_TEST_REDIS not set; skipping redis-backed tests")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	ctx := context.Background()

	store := NewRedisStore(rdb)
	user := "redis-test-user"
	key, _ := redisKey(user)
	t.Cleanup(func() { rdb.Del(context.Background(), key) })
	rdb.Del(ctx, key)

	empty, err := store.Load(ctx, user)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty history, got %+v, %v", empty, err)
	}

	svc := NewService(store)
	for _, city := range []string{"Goa", "Pune", "Agra"} {
		if _, err := svc.Append(ctx, user, trip(city, 2)); err != nil {
			t.Fatalf("append %s: %v", city, err)
		}
	}
	all, _ := store.Load(ctx, user)
	if len(all) != 3 || all[0].City != "Goa" || all[2].City != "Agra" {
		t.Fatalf("unexpected order: %+v", all)
	}

	rdb.RPush(ctx, key, "{not json")
	if _, err := store.Load(ctx, user); !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage for corrupt element, got %v", err)
	}
}

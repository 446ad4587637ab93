package storage

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// exerciseStore runs the shared contract against a live driver.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	key := "test:" + uuid.NewString()

	_, err := s.Get(ctx, key)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, key, []byte(`{"name":"Cameron"}`)))
	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Cameron"}`, string(got))

	require.NoError(t, s.Set(ctx, key, []byte(`{"name":"Sam"}`)))
	got, err = s.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Sam"}`, string(got))
}

// exerciseConcurrentUpdates appends one byte per goroutine; every append
// must survive.
func exerciseConcurrentUpdates(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	key := "test:" + uuid.NewString()

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Update(ctx, key, func(cur []byte) ([]byte, error) {
				var xs []int
				if cur != nil {
					if err := json.Unmarshal(cur, &xs); err != nil {
						return nil, err
					}
				}
				return json.Marshal(append(xs, len(xs)))
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	raw, err := s.Get(ctx, key)
	require.NoError(t, err)
	var xs []int
	require.NoError(t, json.Unmarshal(raw, &xs))
	assert.Len(t, xs, n)
}

func TestRedis_Contract(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	r := NewRedis(RedisConfig{Addr: addr, TTL: time.Minute})
	t.Cleanup(func() { _ = r.Close() })

	require.NoError(t, r.Ping(context.Background()))
	exerciseStore(t, r)
	exerciseConcurrentUpdates(t, r)
}

func TestGorm_Contract(t *testing.T) {
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	g := NewGorm(db)
	t.Cleanup(func() { _ = g.Close() })

	require.NoError(t, g.Migrate(context.Background()))
	require.NoError(t, g.Ping(context.Background()))
	exerciseStore(t, g)
	exerciseConcurrentUpdates(t, g)
}

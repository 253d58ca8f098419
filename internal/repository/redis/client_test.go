package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/gomoku/backend/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*MoveCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewMoveCache(client, ttl), mr
}

func TestMoveCache(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t, time.Minute)

	b := domain.NewBoard(domain.SmallBoard)
	require.NoError(t, b.Place(5, 5, domain.Human))

	t.Run("miss", func(t *testing.T) {
		mv, hit, err := cache.Get(ctx, "hard", b)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Nil(t, mv)
	})

	t.Run("hit", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "hard", b, &domain.Position{Row: 4, Col: 6}))

		mv, hit, err := cache.Get(ctx, "hard", b)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, &domain.Position{Row: 4, Col: 6}, mv)

		_, hit, err = cache.Get(ctx, "easy", b)
		require.NoError(t, err)
		assert.False(t, hit, "tiers are cached separately")
	})

	t.Run("no move is cached too", func(t *testing.T) {
		full := domain.NewBoard(5)
		require.NoError(t, cache.Set(ctx, "easy", full, nil))

		mv, hit, err := cache.Get(ctx, "easy", full)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Nil(t, mv)
	})

	t.Run("entries expire", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "medium", b, &domain.Position{Row: 1, Col: 1}))
		mr.FastForward(2 * time.Minute)

		_, hit, err := cache.Get(ctx, "medium", b)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("corrupt entry is an error", func(t *testing.T) {
		require.NoError(t, mr.Set(BoardKey("hard", domain.NewBoard(domain.LargeBoard)), "oops"))
		_, _, err := cache.Get(ctx, "hard", domain.NewBoard(domain.LargeBoard))
		assert.Error(t, err)
	})
}

func TestBoardKey(t *testing.T) {
	a := domain.NewBoard(domain.SmallBoard)
	b := domain.NewBoard(domain.SmallBoard)
	assert.Equal(t, BoardKey("easy", a), BoardKey("easy", b))

	require.NoError(t, b.Place(0, 0, domain.Computer))
	assert.NotEqual(t, BoardKey("easy", a), BoardKey("easy", b))
	assert.NotEqual(t, BoardKey("easy", a), BoardKey("hard", a))
	assert.NotEqual(t, BoardKey("easy", a), BoardKey("easy", domain.NewBoard(domain.LargeBoard)))
}

func TestInitRedisDisabled(t *testing.T) {
	require.NoError(t, InitRedis("", ""))
	assert.False(t, IsRedisEnabled())
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/iamasit07/gomoku/backend/internal/domain"
)

var RedisClient *redis.Client
var redisEnabled bool

// InitRedis connects to addr. An empty addr or a failed ping leaves Redis
// disabled; the service then runs without a decision cache.
func InitRedis(addr, password string) error {
	if addr == "" {
		log.Info().Str("component", "redis").Msg("REDIS_URL not set, decision cache disabled")
		return nil
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Warn().Str("component", "redis").Err(err).Msg("could not connect, running without decision cache")
		redisEnabled = false
		return nil // Don't fail startup if Redis is unavailable
	}

	redisEnabled = true
	log.Info().Str("component", "redis").Str("addr", addr).Msg("connected")
	return nil
}

// IsRedisEnabled returns whether Redis is available
func IsRedisEnabled() bool {
	return redisEnabled
}

// CloseRedis closes the Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}

const (
	keyPrefix = "gomoku:move:"
	noMove    = "none"
)

// MoveCache stores engine decisions keyed by tier and board contents.
type MoveCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMoveCache(client *redis.Client, ttl time.Duration) *MoveCache {
	return &MoveCache{client: client, ttl: ttl}
}

// Get returns the cached decision. A nil move with hit=true means the cached
// answer was "no move".
func (c *MoveCache) Get(ctx context.Context, tier string, b *domain.Board) (*domain.Position, bool, error) {
	val, err := c.client.Get(ctx, BoardKey(tier, b)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if val == noMove {
		return nil, true, nil
	}

	mv, err := decodeMove(val)
	if err != nil {
		return nil, false, err
	}
	return mv, true, nil
}

func (c *MoveCache) Set(ctx context.Context, tier string, b *domain.Board, move *domain.Position) error {
	val := noMove
	if move != nil {
		val = fmt.Sprintf("%d,%d", move.Row, move.Col)
	}
	return c.client.Set(ctx, BoardKey(tier, b), val, c.ttl).Err()
}

// BoardKey hashes the board size and every cell together with the tier.
func BoardKey(tier string, b *domain.Board) string {
	n := b.Size()
	buf := make([]byte, 0, n*n+1)
	buf = append(buf, byte(n))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			buf = append(buf, byte(b.At(r, c)))
		}
	}
	return keyPrefix + tier + ":" + strconv.FormatUint(xxhash.Sum64(buf), 16)
}

func decodeMove(val string) (*domain.Position, error) {
	parts := strings.Split(val, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed cached move %q", val)
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("malformed cached move %q: %w", val, err)
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("malformed cached move %q: %w", val, err)
	}
	return &domain.Position{Row: row, Col: col}, nil
}

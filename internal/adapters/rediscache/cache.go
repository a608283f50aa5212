// Package rediscache provides a read-through Redis cache in front of a board repository.
package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/example/taskboard/internal/models"
	"github.com/example/taskboard/internal/ports/secondary"
)

const listKey = "boards:all"

// Cache wraps a BoardRepository with Redis-backed caching for reads.
// Writes go to the wrapped repository first and then evict what they touched.
// Redis failures never fail a call; the cache is bypassed instead.
type Cache struct {
	base  secondary.BoardRepository
	redis *redis.Client
	ttl   time.Duration
}

// NewCache creates a caching repository using the provided Redis client and TTL.
// A nil client or zero TTL disables caching.
func NewCache(base secondary.BoardRepository, client *redis.Client, ttl time.Duration) *Cache {
	if base == nil {
		panic("rediscache.NewCache: base repository is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Cache{base: base, redis: client, ttl: ttl}
}

var _ secondary.BoardRepository = (*Cache)(nil)

func (c *Cache) Query(ctx context.Context) ([]*models.Board, error) {
	var boards []*models.Board
	if c.load(ctx, listKey, &boards) {
		return boards, nil
	}

	boards, err := c.base.Query(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, listKey, boards)
	return boards, nil
}

func (c *Cache) GetByID(ctx context.Context, id string) (*models.Board, error) {
	var b models.Board
	if c.load(ctx, boardKey(id), &b) {
		return &b, nil
	}

	got, err := c.base.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, boardKey(id), got)
	return got, nil
}

func (c *Cache) SaveBoard(ctx context.Context, board *models.Board) (*models.Board, error) {
	saved, err := c.base.SaveBoard(ctx, board)
	if err != nil {
		return nil, err
	}
	c.evict(ctx, boardKey(saved.ID))
	return saved, nil
}

func (c *Cache) RemoveBoard(ctx context.Context, id string) error {
	if err := c.base.RemoveBoard(ctx, id); err != nil {
		return err
	}
	c.evict(ctx, boardKey(id))
	return nil
}

// UpdateGroups passes through to the wrapped repository.
//
// Deprecated: use SaveBoard.
func (c *Cache) UpdateGroups(ctx context.Context, groups []models.Group) (*models.Board, error) {
	saved, err := c.base.UpdateGroups(ctx, groups)
	if err != nil {
		return nil, err
	}
	c.evict(ctx, boardKey(saved.ID))
	return saved, nil
}

func (c *Cache) SetCurrBoard(ctx context.Context, board *models.Board) error {
	return c.base.SetCurrBoard(ctx, board)
}

func (c *Cache) GetCurrBoard(ctx context.Context) (*models.Board, error) {
	return c.base.GetCurrBoard(ctx)
}

func (c *Cache) load(ctx context.Context, key string, dst any) bool {
	if c.redis == nil {
		return false
	}
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			// On redis errors fall back to the backing repository without failing.
			_ = c.redis.Del(ctx, key).Err()
		}
		return false
	}
	if err := sonic.Unmarshal(data, dst); err != nil {
		_ = c.redis.Del(ctx, key).Err()
		return false
	}
	return true
}

func (c *Cache) store(ctx context.Context, key string, v any) {
	if c.redis == nil || c.ttl == 0 {
		return
	}
	data, err := sonic.Marshal(v)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, key, data, c.ttl).Err()
}

// evict drops a board entry together with the list.
func (c *Cache) evict(ctx context.Context, key string) {
	if c.redis == nil {
		return
	}
	_, _ = c.redis.Del(ctx, key, listKey).Result()
}

func boardKey(id string) string {
	return "board:" + id
}

package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CartStore holds per-session carts: variation id → requested quantity.
// Carts live outside the transactional store; nothing is persisted to
// Postgres until checkout.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (map[uuid.UUID]int, error)
	SetQuantity(ctx context.Context, sessionID string, variationID uuid.UUID, qty int) error
	Remove(ctx context.Context, sessionID string, variationID uuid.UUID) error
	Clear(ctx context.Context, sessionID string) error
}

// redisCartStore keeps each cart in a Redis hash with a sliding TTL.
type redisCartStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartStore(rdb *redis.Client, ttl time.Duration) CartStore {
	return &redisCartStore{rdb: rdb, ttl: ttl}
}

func cartKey(sessionID string) string { return "cart:" + sessionID }

func (s *redisCartStore) Get(ctx context.Context, sessionID string) (map[uuid.UUID]int, error) {
	raw, err := s.rdb.HGetAll(ctx, cartKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	cart := make(map[uuid.UUID]int, len(raw))
	for field, value := range raw {
		id, err := uuid.Parse(field)
		if err != nil {
			continue // stale garbage field, skip
		}
		qty, err := strconv.Atoi(value)
		if err != nil || qty < 1 {
			continue
		}
		cart[id] = qty
	}
	return cart, nil
}

func (s *redisCartStore) SetQuantity(ctx context.Context, sessionID string, variationID uuid.UUID, qty int) error {
	key := cartKey(sessionID)
	if qty < 1 {
		return s.rdb.HDel(ctx, key, variationID.String()).Err()
	}
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, variationID.String(), qty)
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *redisCartStore) Remove(ctx context.Context, sessionID string, variationID uuid.UUID) error {
	return s.rdb.HDel(ctx, cartKey(sessionID), variationID.String()).Err()
}

func (s *redisCartStore) Clear(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, cartKey(sessionID)).Err()
}

package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"yield-spend-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// YieldCache implements ports.YieldCache using Redis. Entries live longer
// than their freshness window so a degraded upstream can still serve stale
// snapshots; freshness itself is judged by the caller from ComputedAt.
type YieldCache struct {
	client    *goredis.Client
	prefix    string
	retention time.Duration
}

// NewYieldCache creates a Redis-backed yield snapshot cache. retention is the
// hard eviction TTL, not the freshness window.
func NewYieldCache(client *goredis.Client, retention time.Duration) *YieldCache {
	return &YieldCache{
		client:    client,
		prefix:    "yield:",
		retention: retention,
	}
}

// Get retrieves the cached snapshot for a wallet.
// Returns nil, nil if no snapshot is cached.
func (c *YieldCache) Get(ctx context.Context, wallet string) (*domain.YieldSnapshot, error) {
	val, err := c.client.Get(ctx, c.prefix+wallet).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis yield get: %w", err)
	}

	var snapshot domain.YieldSnapshot
	if err := json.Unmarshal(val, &snapshot); err != nil {
		return nil, fmt.Errorf("decode yield snapshot: %w", err)
	}
	return &snapshot, nil
}

// Set stores a snapshot under the retention TTL.
func (c *YieldCache) Set(ctx context.Context, wallet string, snapshot *domain.YieldSnapshot) error {
	val, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode yield snapshot: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+wallet, val, c.retention).Err(); err != nil {
		return fmt.Errorf("redis yield set: %w", err)
	}
	return nil
}

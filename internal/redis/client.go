package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	sessionKeyPrefix = "session:"
	rolesCacheKey    = "roles:list"
	rolesCacheTTL    = 2 * time.Hour
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Session management. One record per token JTI; logout deletes it, which is
// what makes server-side revocation work.

func (c *Client) SaveSession(ctx context.Context, jti string, userID uint, ttl time.Duration) error {
	return c.rdb.Set(ctx, sessionKeyPrefix+jti, userID, ttl).Err()
}

func (c *Client) SessionExists(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, sessionKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return n > 0, nil
}

func (c *Client) DeleteSession(ctx context.Context, jti string) error {
	return c.rdb.Del(ctx, sessionKeyPrefix+jti).Err()
}

// Reference-data cache for the roles list; it is effectively immutable after
// seeding.

func (c *Client) GetCachedRoles(ctx context.Context, dest interface{}) error {
	val, err := c.rdb.Get(ctx, rolesCacheKey).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("roles not cached")
		}
		return fmt.Errorf("failed to get cached roles: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) CacheRoles(ctx context.Context, roles interface{}) error {
	jsonData, err := json.Marshal(roles)
	if err != nil {
		return fmt.Errorf("failed to marshal roles: %w", err)
	}
	return c.rdb.Set(ctx, rolesCacheKey, jsonData, rolesCacheTTL).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// Client is a thin JSON cache over redis. A nil *Client is valid and behaves
// as a cache that never hits, so redis stays optional in deployments.
type Client struct {
	client *redis.Client
}

// New connects to redis at the given address
func New(addr, password string) *Client {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
		Protocol: 2,
	})

	return &Client{client: client}
}

// Get unmarshals the cached value for key into dest. Returns false on a miss.
func (c *Client) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}

	res := c.client.Get(ctx, key)
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return false, nil
		}
		return false, res.Err()
	}

	buf, err := res.Bytes()
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(buf, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores value under key with a TTL
func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil {
		return nil
	}

	buf, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, buf, ttl).Err()
}

// Delete drops a key
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}

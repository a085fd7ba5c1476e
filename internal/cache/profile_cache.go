package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/you/login-tut/internal/model"
)

// ProfileCache is a read-through cache keyed by username. It is optional;
// the service runs without it when no Redis address is configured.
type ProfileCache struct{ R *redis.Client }

func New(addr string) *ProfileCache {
	if addr == "" {
		return nil
	}
	return &ProfileCache{R: redis.NewClient(&redis.Options{Addr: addr})}
}

func key(username string) string { return "profile:" + username }

func (c *ProfileCache) Get(ctx context.Context, username string) (*model.Profile, error) {
	b, err := c.R.Get(ctx, key(username)).Bytes()
	if err != nil {
		return nil, err
	}
	var p model.Profile
	return &p, json.Unmarshal(b, &p)
}

func (c *ProfileCache) Set(ctx context.Context, p *model.Profile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.R.Set(ctx, key(p.Username), b, time.Hour).Err()
}

func (c *ProfileCache) Delete(ctx context.Context, username string) error {
	return c.R.Del(ctx, key(username)).Err()
}

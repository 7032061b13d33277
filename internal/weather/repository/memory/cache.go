package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"weather-ai-bot/internal/weather/repository"
)

const defaultSize = 256

type implCache struct {
	lru *expirable.LRU[string, string]
}

// New creates an in-process cache holding at most size replies for ttl.
// Per-entry ttl passed to Set is ignored; every entry shares the cache ttl.
func New(size int, ttl time.Duration) repository.Cache {
	if size <= 0 {
		size = defaultSize
	}
	return &implCache{lru: expirable.NewLRU[string, string](size, nil, ttl)}
}

func (c *implCache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := c.lru.Get(key)
	return v, ok, nil
}

func (c *implCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.lru.Add(key, value)
	return nil
}

package llm

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedClient memoizes successful responses keyed by task and prompts.
type cachedClient struct {
	next     LLMClient
	cache    *expirable.LRU[string, GenerateResponse]
	observer Observer
}

// NewCachedClient wraps next with an LRU of at most size entries, each
// expiring after ttl.
func NewCachedClient(next LLMClient, size int, ttl time.Duration, observer Observer) LLMClient {
	return &cachedClient{
		next:     next,
		cache:    expirable.NewLRU[string, GenerateResponse](size, nil, ttl),
		observer: observerOrNoop(observer),
	}
}

func cacheKey(req GenerateRequest) string {
	return string(req.Task) + "\x00" + req.SystemPrompt + "\x00" + req.UserPrompt
}

func (c *cachedClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	key := cacheKey(req)
	if hit, ok := c.cache.Get(key); ok {
		c.observer.OnCallComplete(LLMCallEvent{Task: req.Task, Model: hit.Model, Success: true, Cached: true})
		resp := hit
		return &resp, nil
	}

	resp, err := c.next.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, *resp)
	return resp, nil
}

func (c *cachedClient) Available(ctx context.Context) bool {
	return c.next.Available(ctx)
}

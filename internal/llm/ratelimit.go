package llm

import (
	"context"

	"golang.org/x/time/rate"
)

// rateLimitedClient refuses calls once the per-minute budget is spent
// instead of queueing them.
type rateLimitedClient struct {
	next    LLMClient
	limiter *rate.Limiter
}

// NewRateLimitedClient wraps next with a token bucket refilled at
// perMinute tokens per minute.
func NewRateLimitedClient(next LLMClient, perMinute int) LLMClient {
	burst := perMinute / 6
	if burst < 1 {
		burst = 1
	}
	return &rateLimitedClient{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst),
	}
}

func (c *rateLimitedClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if !c.limiter.Allow() {
		return nil, ErrRateLimited
	}
	return c.next.Generate(ctx, req)
}

func (c *rateLimitedClient) Available(ctx context.Context) bool {
	return c.next.Available(ctx)
}

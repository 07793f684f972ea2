package embedding

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimited throttles calls to an embedding provider
type RateLimited struct {
	next    Provider
	limiter *rate.Limiter
}

// NewRateLimited wraps p. A non-positive rps disables limiting.
func NewRateLimited(p Provider, rps float64) *RateLimited {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &RateLimited{next: p, limiter: rate.NewLimiter(limit, 1)}
}

func (r *RateLimited) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return r.next.Embed(ctx, text)
}

// EmbedBatch counts as a single request against the budget
func (r *RateLimited) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return r.next.EmbedBatch(ctx, texts)
}

func (r *RateLimited) Close() error {
	return r.next.Close()
}

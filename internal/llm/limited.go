package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimited wraps a provider so requests respect a requests-per-second budget
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
	return &RateLimited{
		next:    p,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (r *RateLimited) Complete(ctx context.Context, prompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}
	return r.next.Complete(ctx, prompt)
}

func (r *RateLimited) CompleteWithSystem(ctx context.Context, system, prompt string) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}
	return r.next.CompleteWithSystem(ctx, system, prompt)
}

func (r *RateLimited) Close() error {
	return r.next.Close()
}

func (r *RateLimited) Capability() Capability {
	return Describe(r.next)
}

// Package ratelimit throttles outbound calls per provider with token buckets.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Config sets the sustained rate and burst of a provider's bucket.
type Config struct {
	RequestsPerSecond float64 `env:"AMADEUS_RATE_LIMIT_RPS" envDefault:"10"`
	Burst             int     `env:"AMADEUS_RATE_LIMIT_BURST" envDefault:"1"`
}

// DefaultConfig matches the test environment quota of the offer search API.
func DefaultConfig() Config {
	return Config{RequestsPerSecond: 10, Burst: 1}
}

// ProviderLimiter hands out one token bucket per provider name.
type ProviderLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	defaults Config
}

// NewProviderLimiter creates limiters lazily using cfg. A non-positive rate disables limiting.
func NewProviderLimiter(cfg Config) *ProviderLimiter {
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	return &ProviderLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: cfg,
	}
}

func (p *ProviderLimiter) newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, burst)
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// Limiter returns the bucket for provider, creating it on first use.
func (p *ProviderLimiter) Limiter(provider string) *rate.Limiter {
	p.mu.RLock()
	limiter, ok := p.limiters[provider]
	p.mu.RUnlock()
	if ok {
		return limiter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if limiter, ok = p.limiters[provider]; ok {
		return limiter
	}
	limiter = p.newLimiter(p.defaults.RequestsPerSecond, p.defaults.Burst)
	p.limiters[provider] = limiter
	return limiter
}

// Wait blocks until provider may make a call or ctx is done.
func (p *ProviderLimiter) Wait(ctx context.Context, provider string) error {
	return p.Limiter(provider).Wait(ctx)
}

package resilience

import (
	"context"
	"fmt"

	"github.com/kbukum/slackweb/endpoint"
)

// Published per-minute allowances for each Slack rate tier. The special
// tier covers chat.postMessage, roughly one message per second.
var tierPerMinute = map[endpoint.Tier]float64{
	endpoint.TierSpecial: 60,
	endpoint.Tier1:       1,
	endpoint.Tier2:       20,
	endpoint.Tier3:       50,
	endpoint.Tier4:       100,
}

// TierLimiterConfig configures client-side pacing by rate tier.
type TierLimiterConfig struct {
	// Name prefixes the per-tier bucket names.
	Name string `yaml:"name" mapstructure:"name"`
	// Scale multiplies every tier's allowance. Zero means 1.
	Scale float64 `yaml:"scale" mapstructure:"scale" validate:"gte=0"`
	// OnLimit is called with the bucket name whenever a call has to wait.
	OnLimit func(name string) `yaml:"-" mapstructure:"-" validate:"-"`
}

// DefaultTierLimiterConfig paces at the published allowances.
func DefaultTierLimiterConfig(name string) TierLimiterConfig {
	return TierLimiterConfig{Name: name, Scale: 1}
}

// TierLimiter keeps one token bucket per rate tier.
type TierLimiter struct {
	buckets map[endpoint.Tier]*RateLimiter
}

// NewTierLimiter creates buckets for every known tier.
func NewTierLimiter(config TierLimiterConfig) *TierLimiter {
	scale := config.Scale
	if scale <= 0 {
		scale = 1
	}
	tl := &TierLimiter{buckets: make(map[endpoint.Tier]*RateLimiter, len(tierPerMinute))}
	for tier, perMinute := range tierPerMinute {
		tl.buckets[tier] = NewRateLimiter(RateLimiterConfig{
			Name:      fmt.Sprintf("%s.%s", config.Name, tier),
			PerMinute: perMinute * scale,
			OnLimit:   config.OnLimit,
		})
	}
	return tl
}

// Wait blocks until a call in tier may proceed or ctx is done. Unknown
// tiers are not paced.
func (tl *TierLimiter) Wait(ctx context.Context, tier endpoint.Tier) error {
	b, ok := tl.buckets[tier]
	if !ok {
		return nil
	}
	return b.Wait(ctx)
}

// Allow reports whether a call in tier may proceed now, taking a token if so.
func (tl *TierLimiter) Allow(tier endpoint.Tier) bool {
	b, ok := tl.buckets[tier]
	if !ok {
		return true
	}
	return b.Allow()
}

// Bucket returns the bucket backing tier.
func (tl *TierLimiter) Bucket(tier endpoint.Tier) (*RateLimiter, bool) {
	b, ok := tl.buckets[tier]
	return b, ok
}

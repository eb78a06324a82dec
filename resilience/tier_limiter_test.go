package resilience

import (
	"context"
	"testing"

	"github.com/kbukum/slackweb/endpoint"
)

func TestTierLimiter_PublishedAllowances(t *testing.T) {
	tl := NewTierLimiter(DefaultTierLimiterConfig("slack"))

	tests := []struct {
		tier endpoint.Tier
		want float64
	}{
		{endpoint.TierSpecial, 60},
		{endpoint.Tier1, 1},
		{endpoint.Tier2, 20},
		{endpoint.Tier3, 50},
		{endpoint.Tier4, 100},
	}
	for _, tt := range tests {
		b, ok := tl.Bucket(tt.tier)
		if !ok {
			t.Fatalf("no bucket for %s", tt.tier)
		}
		if b.PerMinute() != tt.want {
			t.Errorf("%s: expected %v/min, got %v", tt.tier, tt.want, b.PerMinute())
		}
	}
}

func TestTierLimiter_TiersAreIndependent(t *testing.T) {
	tl := NewTierLimiter(DefaultTierLimiterConfig("slack"))

	if !tl.Allow(endpoint.Tier1) {
		t.Fatal("first tier 1 call should be allowed")
	}
	if tl.Allow(endpoint.Tier1) {
		t.Error("second tier 1 call should be held back")
	}
	if !tl.Allow(endpoint.Tier4) {
		t.Error("tier 4 should not be affected by tier 1")
	}
}

func TestTierLimiter_Scale(t *testing.T) {
	tl := NewTierLimiter(TierLimiterConfig{Name: "slack", Scale: 0.5})
	b, _ := tl.Bucket(endpoint.Tier2)
	if b.PerMinute() != 10 {
		t.Errorf("expected scaled 10/min, got %v", b.PerMinute())
	}
}

func TestTierLimiter_UnknownTierIsNotPaced(t *testing.T) {
	tl := NewTierLimiter(DefaultTierLimiterConfig("slack"))
	if err := tl.Wait(context.Background(), endpoint.Tier(99)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !tl.Allow(endpoint.Tier(99)) {
		t.Error("unknown tier should always be allowed")
	}
}

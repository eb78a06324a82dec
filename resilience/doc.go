// Package resilience provides optional client-side pacing for Web API calls.
//
//   - RateLimiter: a token bucket expressed in calls per minute
//   - TierLimiter: one bucket per Slack rate tier
//   - Bulkhead: a cap on calls in flight
//
// Nothing here retries; a rejected or throttled call is the caller's to
// repeat.
//
//	tl := resilience.NewTierLimiter(resilience.DefaultTierLimiterConfig("slack"))
//	if err := tl.Wait(ctx, endpoint.ChatPostMessage.Tier()); err != nil {
//	    return err
//	}
package resilience

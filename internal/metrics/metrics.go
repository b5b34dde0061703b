package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Storefront counters, exposed on the health endpoint.
var (
	CheckoutAttempts   Counter
	CheckoutRedirects  Counter
	CheckoutFailures   Counter
	OrdersFulfilled    Counter
	WebhooksRejected   Counter
	NewsletterSignups  Counter
	CommissionRequests Counter
)

// Snapshot returns the current counter values keyed by name.
func Snapshot() map[string]uint64 {
	return map[string]uint64{
		"checkout_attempts":   CheckoutAttempts.Load(),
		"checkout_redirects":  CheckoutRedirects.Load(),
		"checkout_failures":   CheckoutFailures.Load(),
		"orders_fulfilled":    OrdersFulfilled.Load(),
		"webhooks_rejected":   WebhooksRejected.Load(),
		"newsletter_signups":  NewsletterSignups.Load(),
		"commission_requests": CommissionRequests.Load(),
	}
}

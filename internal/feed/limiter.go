package feed

import (
	"context"
	"net/url"
	"sync"
	"time"
)

// Per-host politeness settings.
const (
	MaxConcurrencyPerHost = 2
	DelayBetweenHostHits  = 500 * time.Millisecond
)

// hostLimiter bounds parallel requests to one host and spaces them out.
type hostLimiter struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
	last  map[string]time.Time
	delay time.Duration
}

func newHostLimiter(delay time.Duration) *hostLimiter {
	return &hostLimiter{
		slots: make(map[string]chan struct{}),
		last:  make(map[string]time.Time),
		delay: delay,
	}
}

// acquire blocks until host has a free slot and the delay since the
// previous request has passed.
func (l *hostLimiter) acquire(ctx context.Context, host string) error {
	l.mu.Lock()
	slot, ok := l.slots[host]
	if !ok {
		slot = make(chan struct{}, MaxConcurrencyPerHost)
		l.slots[host] = slot
	}
	last := l.last[host]
	l.mu.Unlock()

	select {
	case slot <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	if last.IsZero() {
		return nil
	}
	wait := l.delay - time.Since(last)
	if wait <= 0 {
		return nil
	}
	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		<-slot
		return ctx.Err()
	}
}

func (l *hostLimiter) release(host string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last[host] = time.Now()
	if slot, ok := l.slots[host]; ok {
		<-slot
	}
}

func hostOf(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil || u.Host == "" {
		return feedURL
	}
	return u.Host
}

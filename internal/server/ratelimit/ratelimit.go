// Package ratelimit throttles API clients with per-endpoint token
// buckets. Generation and export endpoints get tight hourly budgets;
// autosave traffic gets room to breathe.
package ratelimit

import (
	"sync"
	"time"
)

// Info reports the state of one limiting decision. The server copies it
// into the X-RateLimit response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// bucket refills continuously at rate tokens per second up to capacity.
// Each bucket carries its own lock; the limiter map lock is not held
// while a bucket is consulted.
type bucket struct {
	mu       sync.Mutex
	capacity float64
	rate     float64
	tokens   float64
	refilled time.Time
	lastUsed time.Time
}

func newBucket(capacity int, rate float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity: float64(capacity),
		rate:     rate,
		tokens:   float64(capacity),
		refilled: now,
		lastUsed: now,
	}
}

// take consumes one token when available and reports the state after the
// decision. reset is when the bucket would be full again.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.refilled).Seconds()*b.rate)
	b.refilled = now
	b.lastUsed = now

	if b.tokens >= 1 {
		b.tokens--
		allowed = true
	}

	reset = now
	if b.tokens < b.capacity {
		reset = now.Add(time.Duration((b.capacity - b.tokens) / b.rate * float64(time.Second)))
	}
	return allowed, int(b.tokens), reset
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastUsed.Before(cutoff)
}

// Config holds the limiter settings. EndpointConfigs override the
// default limit for specific path and method combinations.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter applies per-client, per-endpoint limits. Buckets are keyed by
// client, path, and method, and dropped after an hour of inactivity so
// one-off clients do not accumulate.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config

	cleanupTicker *time.Ticker
	done          chan struct{}
}

// NewLimiter builds a limiter for the given configuration. A nil config
// enables limiting with the default budget only.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}
	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.done = make(chan struct{})
		go l.dropIdleBuckets()
	}
	return l
}

// Allow decides whether a request from clientID against path and method
// may proceed. Whitelisted clients and unlimited endpoints report a zero
// Limit, meaning no budget applies.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	limit := MatchEndpoint(path, method, l.config.EndpointConfigs)
	if limit == nil {
		limit = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if limit.Limit <= 0 {
		// Unlimited endpoint, the health check in particular.
		return true, Info{Allowed: true}
	}

	b := l.bucketFor(clientID+":"+path+":"+method, limit)
	allowed, remaining, reset := b.take()

	info := Info{
		Allowed:   allowed,
		Limit:     limit.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		info.RetryAfter = max(time.Until(reset), 0)
	}
	return allowed, info
}

func (l *Limiter) bucketFor(key string, limit *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := limit.Burst
	if capacity <= 0 {
		capacity = limit.Limit
	}
	b := newBucket(capacity, float64(limit.Limit)/limit.Window.Seconds())
	l.buckets[key] = b
	return b
}

func (l *Limiter) dropIdleBuckets() {
	for {
		select {
		case <-l.cleanupTicker.C:
			cutoff := time.Now().Add(-time.Hour)
			l.mu.Lock()
			for key, b := range l.buckets {
				if b.idleSince(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		case <-l.done:
			return
		}
	}
}

// Stop ends the cleanup goroutine. Call once on shutdown.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.done)
	}
}

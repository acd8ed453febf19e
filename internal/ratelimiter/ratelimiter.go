package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Limiter interface {
	Allow(key string) (bool, time.Duration)
}

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// TokenBucketLimiter keeps one token bucket per key (client IP). A key may
// burst up to limit requests and then refills at limit per window.
type TokenBucketLimiter struct {
	sync.Mutex
	clients map[string]*client
	limit   int
	every   rate.Limit
	window  time.Duration
	now     func() time.Time
	stop    chan struct{}
}

func NewTokenBucketLimiter(limit int, window time.Duration) *TokenBucketLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}

	rl := &TokenBucketLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		every:   rate.Every(window / time.Duration(limit)),
		window:  window,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Allow takes a token for key. When none is left it reports how long until
// the next one is available.
func (rl *TokenBucketLimiter) Allow(key string) (bool, time.Duration) {
	now := rl.now()

	rl.Lock()
	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.every, rl.limit)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	rl.Unlock()

	r := c.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, rl.window
	}

	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}

	return true, 0
}

func (rl *TokenBucketLimiter) Stop() {
	close(rl.stop)
}

func (rl *TokenBucketLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stop:
			return
		}
	}
}

// cleanup drops buckets idle for two windows; they would be full anyway.
func (rl *TokenBucketLimiter) cleanup() {
	ttl := 2 * rl.window
	now := rl.now()

	rl.Lock()
	defer rl.Unlock()
	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > ttl {
			delete(rl.clients, key)
		}
	}
}

func (rl *TokenBucketLimiter) size() int {
	rl.Lock()
	defer rl.Unlock()
	return len(rl.clients)
}

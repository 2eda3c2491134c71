package common

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type RateLimiter struct {
	mu           sync.Mutex
	restrictions []Restriction // Restrictions to consider
	history      []time.Time   // History of requests
	duration     time.Duration // Min duration to wait for all restrictions to be lifted
	cooldown     Stopwatch     // Running after the server told us to slow down
	now          func() time.Time
}

func NewRateLimiter(restrictions []Restriction) *RateLimiter {
	rl := &RateLimiter{now: time.Now}
	rl.restrictions = make([]Restriction, len(restrictions))
	copy(rl.restrictions, restrictions)
	for _, restriction := range restrictions {
		if restriction.Duration > rl.duration {
			rl.duration = restriction.Duration
		}
	}
	rl.cooldown = NewStopwatch(rl.duration)

	return rl
}

// Block until the restrictions allow a new request, or the context is done.
// Once this returns nil the request has been accounted in the history
func (rl *RateLimiter) Wait(ctx context.Context) error {

	// Give this request a unique identifier, only used for logging
	var id uuid.UUID
	for {
		rl.mu.Lock()
		now := rl.now()
		rl.trim(now)
		analysis := rl.analyse(now)
		if analysis.allowed {
			rl.history = append(rl.history, now)
			rl.mu.Unlock()
			return nil
		}
		rl.mu.Unlock()

		if id == uuid.Nil {
			id = uuid.New()
		}
		log.Warn().Str("request", id.String()).Msgf("Request delayed %.2f seconds", analysis.wait.Seconds())

		timer := time.NewTimer(analysis.wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// The server answered with a rate limit error: stop sending
// requests for the provided time, or for the longest restriction if unknown
func (rl *RateLimiter) ReceivedRateLimit(retryAfter time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if retryAfter <= 0 {
		retryAfter = rl.duration
	}
	rl.cooldown.Timeout = retryAfter
	rl.cooldown.Start(rl.now())
	log.Warn().Msgf("Rate limit received, cooling down for %s", retryAfter)
}

// Trim the current history, leaving only the requests
// that are young enough to be affected by at least one restriction
func (rl *RateLimiter) trim(now time.Time) {
	// Find the index from which we need to keep the history.
	// Start searching at the end of the slice.
	// Times are stored in chronological order
	index := 0
	for i := len(rl.history) - 1; i >= 0; i-- {
		if now.Sub(rl.history[i]) >= rl.duration {
			index = i + 1
			break
		}
	}
	rl.history = rl.history[index:]
}

func (rl *RateLimiter) analyse(now time.Time) Analysis {

	if remaining := rl.cooldown.Remaining(now); remaining > 0 {
		return Analysis{false, remaining}
	}

	// Merge the analyses of every restriction
	var wait time.Duration = 0
	allowed := true
	for _, restriction := range rl.restrictions {
		analysis := restriction.Analyse(rl.history, now)
		allowed = allowed && analysis.allowed
		if analysis.wait > wait {
			wait = analysis.wait
		}
	}
	return Analysis{allowed, wait}
}

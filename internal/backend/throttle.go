package backend

import (
	"context"
	"sync"
	"time"
)

// Pacer enforces a minimum interval between successive frames.
type Pacer struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
	now  func() time.Time
}

// NewPacer returns a pacer releasing at most one frame per interval. A
// non-positive interval never blocks.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{now: time.Now}
	}
	return &Pacer{interval: interval, now: time.Now}
}

// Wait blocks until the next frame slot or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.interval <= 0 {
		return ctx.Err()
	}
	for {
		p.mu.Lock()
		wait := p.next.Sub(p.now())
		if wait <= 0 {
			p.next = p.now().Add(p.interval)
			p.mu.Unlock()
			return nil
		}
		p.mu.Unlock()
		if wait > p.interval {
			wait = p.interval
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

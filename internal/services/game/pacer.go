package game

import (
	"sync"
	"time"
)

// pacer owns the delayed transition between scoring an answer and
// accepting input again. Every schedule or cancel bumps a sequence
// number, so a timer that already left time.AfterFunc's queue but has
// not yet run sees itself stale and does nothing. This ties pending
// transitions to the engine's lifetime: restart or close invalidates
// them instead of letting them mutate a discarded game.
type pacer struct {
	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

func newPacer() *pacer {
	return &pacer{}
}

// schedule arranges fn to run after d, replacing any pending run.
// fn must not call back into the pacer.
func (p *pacer) schedule(d time.Duration, fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}
	p.seq++
	seq := p.seq

	p.timer = time.AfterFunc(d, func() {
		p.mu.Lock()
		stale := seq != p.seq
		p.mu.Unlock()
		if !stale {
			fn()
		}
	})
}

// cancel invalidates any pending run
func (p *pacer) cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

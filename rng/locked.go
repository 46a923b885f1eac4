// SPDX-License-Identifier: MIT

package rng

import "sync"

// Locked serializes access to one Generator so that several goroutines can
// draw from a single stream. The interleaving of draws between goroutines is
// up to the scheduler, so results are only reproducible when the callers'
// order is; prefer Derive when per-worker determinism matters.
type Locked struct {
	mu sync.Mutex
	g  *Generator
}

// NewLocked returns a Locked generator seeded with seed.
func NewLocked(seed uint32) *Locked {
	return &Locked{g: New(seed)}
}

func (l *Locked) Reseed(seed uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.g.Reseed(seed)
}

func (l *Locked) Next() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Next()
}

func (l *Locked) Range(lo, hi int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Range(lo, hi)
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Float64()
}

// ShuffleFunc holds the lock for the whole pass; swap must not call back
// into l.
func (l *Locked) ShuffleFunc(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.g.ShuffleFunc(n, swap)
}

// Derive returns an unlocked child generator; see Generator.Derive.
func (l *Locked) Derive(stream uint64) *Generator {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.g.Derive(stream)
}

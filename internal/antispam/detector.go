// Package antispam implements a sliding-window message flood detector.
package antispam

import (
	"sync"
	"time"
)

// Detector counts messages per user inside a sliding window and reports
// when a user exceeds the limit. State is in-memory only: a restart
// forgives in-flight bursts, which is acceptable for a 6 second window.
type Detector struct {
	window time.Duration
	limit  int

	mu   sync.Mutex
	seen map[string][]time.Time
}

// New creates a detector that triggers when a user sends more than
// limit messages inside window.
func New(window time.Duration, limit int) *Detector {
	return &Detector{
		window: window,
		limit:  limit,
		seen:   make(map[string][]time.Time),
	}
}

// Track records one message from the user at the given instant and
// returns true when the burst crosses the limit. The user's window is
// cleared on trigger, so one burst produces exactly one trigger instead
// of one per extra message.
func (d *Detector) Track(userID string, now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	cutoff := now.Add(-d.window)

	recent := d.seen[userID][:0]
	for _, t := range d.seen[userID] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	recent = append(recent, now)

	if len(recent) > d.limit {
		delete(d.seen, userID)
		return true
	}

	d.seen[userID] = recent
	return false
}

// Forget drops the user's tracking state, e.g. when they leave the guild
func (d *Detector) Forget(userID string) {
	d.mu.Lock()
	delete(d.seen, userID)
	d.mu.Unlock()
}

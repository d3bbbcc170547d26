package services

import (
	"sync"
	"time"
)

type summarySource interface {
	DailySummary(userID string, at time.Time) (DailySummary, error)
}

// SummaryRefresher recomputes a user's daily summary after diary writes and
// pushes it to their clients. Overlapping refreshes for the same user are
// guarded by a generation token: a fetch applies its result only if no
// newer refresh started while it ran, so a slow superseded fetch can never
// overwrite a later one.
type SummaryRefresher struct {
	mu     sync.Mutex
	gens   map[string]uint64
	latest map[string]DailySummary
	src    summarySource
	hub    *RealtimeHub
}

func NewSummaryRefresher(src summarySource, hub *RealtimeHub) *SummaryRefresher {
	return &SummaryRefresher{
		gens:   make(map[string]uint64),
		latest: make(map[string]DailySummary),
		src:    src,
		hub:    hub,
	}
}

func (r *SummaryRefresher) Refresh(userID string, at time.Time) {
	r.mu.Lock()
	r.gens[userID]++
	gen := r.gens[userID]
	r.mu.Unlock()

	sum, err := r.src.DailySummary(userID, at)
	if err != nil {
		return
	}

	r.mu.Lock()
	if r.gens[userID] != gen {
		r.mu.Unlock()
		return // superseded while fetching
	}
	r.latest[userID] = sum
	r.mu.Unlock()

	if r.hub != nil {
		r.hub.Broadcast(userID, "diary.summary", sum)
	}
}

// Latest returns the most recently applied summary for userID.
func (r *SummaryRefresher) Latest(userID string) (DailySummary, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum, ok := r.latest[userID]
	return sum, ok
}

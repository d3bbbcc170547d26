package services

import (
	"sync"
	"time"
)

// Session event kinds. Sign-in/out come from the identity layer; record
// changes come from onboarding and diary writes.
const (
	EventSignedIn       = "signed_in"
	EventSignedOut      = "signed_out"
	EventRecordsChanged = "records_changed"
)

type SessionEvent struct {
	UserID string
	Kind   string
}

// SessionBus is the process-wide session/auth event stream. Subscribers are
// invoked synchronously in Publish order, so a subscriber that re-reads the
// database always observes the write that triggered the event.
type SessionBus struct {
	mu   sync.RWMutex
	next int
	subs map[int]func(SessionEvent)
}

func NewSessionBus() *SessionBus {
	return &SessionBus{subs: make(map[int]func(SessionEvent))}
}

// Subscribe registers cb and returns the matching unsubscribe func.
func (b *SessionBus) Subscribe(cb func(SessionEvent)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = cb
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (b *SessionBus) Publish(ev SessionEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, cb := range b.subs {
		cb(ev)
	}
}

type sessionDeps struct {
	bus       *SessionBus
	hub       *RealtimeHub
	refresher *SummaryRefresher
}

var _session sessionDeps

func InitSessionDeps(bus *SessionBus, hub *RealtimeHub, refresher *SummaryRefresher) {
	_session = sessionDeps{bus: bus, hub: hub, refresher: refresher}
}

// EmitSessionEvent is safe to call anywhere, including before Init.
func EmitSessionEvent(userID, kind string) {
	if _session.bus == nil {
		return
	}
	_session.bus.Publish(SessionEvent{UserID: userID, Kind: kind})
}

// RefreshDailySummary kicks an asynchronous summary refresh for the day
// containing at.
func RefreshDailySummary(userID string, at time.Time) {
	if _session.refresher == nil {
		return
	}
	go _session.refresher.Refresh(userID, at)
}

// SessionHub exposes the websocket hub for the realtime controller.
func SessionHub() *RealtimeHub {
	return _session.hub
}

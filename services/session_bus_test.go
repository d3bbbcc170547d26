package services

import "testing"

func TestSessionBusPublishAndUnsubscribe(t *testing.T) {
	bus := NewSessionBus()

	var got []SessionEvent
	unsubscribe := bus.Subscribe(func(ev SessionEvent) {
		got = append(got, ev)
	})

	bus.Publish(SessionEvent{UserID: "u1", Kind: EventSignedIn})
	bus.Publish(SessionEvent{UserID: "u1", Kind: EventRecordsChanged})

	if len(got) != 2 {
		t.Fatalf("subscriber saw %d events, want 2", len(got))
	}
	if got[0].Kind != EventSignedIn || got[1].Kind != EventRecordsChanged {
		t.Errorf("events out of order: %+v", got)
	}

	unsubscribe()
	bus.Publish(SessionEvent{UserID: "u1", Kind: EventSignedOut})
	if len(got) != 2 {
		t.Errorf("subscriber still receiving after unsubscribe, saw %d", len(got))
	}
}

func TestSessionBusMultipleSubscribers(t *testing.T) {
	bus := NewSessionBus()

	a, b := 0, 0
	bus.Subscribe(func(SessionEvent) { a++ })
	defer bus.Subscribe(func(SessionEvent) { b++ })()

	bus.Publish(SessionEvent{UserID: "u1", Kind: EventRecordsChanged})

	if a != 1 || b != 1 {
		t.Errorf("subscriber counts = %d, %d; want 1, 1", a, b)
	}
}

func TestEmitSessionEventSafeWhenUninitialized(t *testing.T) {
	old := _session
	_session = sessionDeps{}
	defer func() { _session = old }()

	// must not panic before InitSessionDeps
	EmitSessionEvent("u1", EventSignedIn)
}

package services

import (
	"sync"
	"testing"
	"time"
)

// blockingSource hands each DailySummary call a channel so the test decides
// when, and with what, each in-flight fetch completes.
type blockingSource struct {
	mu    sync.Mutex
	calls []chan DailySummary
}

func (s *blockingSource) DailySummary(userID string, at time.Time) (DailySummary, error) {
	ch := make(chan DailySummary)
	s.mu.Lock()
	s.calls = append(s.calls, ch)
	s.mu.Unlock()
	return <-ch, nil
}

func (s *blockingSource) waitForCalls(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		s.mu.Lock()
		got := len(s.calls)
		s.mu.Unlock()
		if got >= n {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d calls, have %d", n, got)
		}
		time.Sleep(time.Millisecond)
	}
}

// A refresh that was superseded while its fetch was in flight must not
// overwrite the newer refresh's result.
func TestRefreshDiscardsSupersededResult(t *testing.T) {
	src := &blockingSource{}
	r := NewSummaryRefresher(src, nil)
	now := time.Now()

	doneA := make(chan struct{})
	doneB := make(chan struct{})

	go func() {
		r.Refresh("user-1", now)
		close(doneA)
	}()
	src.waitForCalls(t, 1)

	go func() {
		r.Refresh("user-1", now)
		close(doneB)
	}()
	src.waitForCalls(t, 2)

	// the newer refresh completes first
	src.calls[1] <- DailySummary{Consumed: 700}
	<-doneB

	// the stale one completes afterwards and must be discarded
	src.calls[0] <- DailySummary{Consumed: 300}
	<-doneA

	got, ok := r.Latest("user-1")
	if !ok {
		t.Fatal("no summary applied")
	}
	if got.Consumed != 700 {
		t.Errorf("stale fetch overwrote newer result: consumed = %d, want 700", got.Consumed)
	}
}

func TestRefreshAppliesCurrentResult(t *testing.T) {
	src := &blockingSource{}
	r := NewSummaryRefresher(src, nil)
	now := time.Now()

	done := make(chan struct{})
	go func() {
		r.Refresh("user-1", now)
		close(done)
	}()
	src.waitForCalls(t, 1)
	src.calls[0] <- DailySummary{Consumed: 450}
	<-done

	got, ok := r.Latest("user-1")
	if !ok || got.Consumed != 450 {
		t.Errorf("Latest = %+v, %v; want consumed 450", got, ok)
	}
}

func TestRefreshTracksUsersIndependently(t *testing.T) {
	src := &blockingSource{}
	r := NewSummaryRefresher(src, nil)
	now := time.Now()

	doneA := make(chan struct{})
	doneB := make(chan struct{})

	go func() { r.Refresh("user-a", now); close(doneA) }()
	src.waitForCalls(t, 1)
	go func() { r.Refresh("user-b", now); close(doneB) }()
	src.waitForCalls(t, 2)

	// user-b completing later must not invalidate user-a's fetch
	src.calls[0] <- DailySummary{Consumed: 100}
	<-doneA
	src.calls[1] <- DailySummary{Consumed: 200}
	<-doneB

	if got, _ := r.Latest("user-a"); got.Consumed != 100 {
		t.Errorf("user-a consumed = %d, want 100", got.Consumed)
	}
	if got, _ := r.Latest("user-b"); got.Consumed != 200 {
		t.Errorf("user-b consumed = %d, want 200", got.Consumed)
	}
}

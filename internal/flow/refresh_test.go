package flow

import "testing"

func TestRegistry_InvalidateTriggersOnlySubscribed(t *testing.T) {
	r := NewRegistry()

	var decks, quizzes int
	r.Subscribe(Decks, func() { decks++ })
	r.Subscribe(Quizzes, func() { quizzes++ })

	r.Invalidate(Decks)
	if decks != 1 || quizzes != 0 {
		t.Fatalf("expected decks=1 quizzes=0, got decks=%d quizzes=%d", decks, quizzes)
	}

	r.Invalidate(Decks, Quizzes)
	if decks != 2 || quizzes != 1 {
		t.Fatalf("expected decks=2 quizzes=1, got decks=%d quizzes=%d", decks, quizzes)
	}
}

func TestRegistry_UnsubscribeStopsCallbacks(t *testing.T) {
	r := NewRegistry()

	var calls int
	cancel := r.Subscribe(Summaries, func() { calls++ })
	r.Invalidate(Summaries)
	cancel()
	r.Invalidate(Summaries)

	if calls != 1 {
		t.Fatalf("expected 1 call after unsubscribe, got %d", calls)
	}
}

func TestRegistry_InvalidateWithNoSubscribers(t *testing.T) {
	r := NewRegistry()
	// Must not panic.
	r.Invalidate(Documents)
}

package flow

import (
	"time"

	"github.com/google/uuid"

	"lectura-cli/internal/models"
)

// starState tracks the two-phase optimistic toggle for one card: the
// visible value flips immediately, and the pre-toggle value is retained
// until the persistence call resolves.
type starState struct {
	value   bool
	pending bool
	prev    bool
}

// DeckSession is the study flow over one flashcard deck: index-based
// traversal with wraparound, a reveal flip that resets on navigation,
// and per-card star state persisted optimistically.
type DeckSession struct {
	cards    []models.FlashcardCard
	cur      cursor
	revealed bool
	stars    map[uuid.UUID]*starState
	reviewed map[uuid.UUID]time.Time

	// rollback controls whether a failed star persistence reverts the
	// optimistic flip.
	rollback bool
}

func NewDeckSession(cards []models.FlashcardCard, rollbackOnFailure bool) *DeckSession {
	s := &DeckSession{
		cards:    cards,
		cur:      cursor{length: len(cards)},
		stars:    make(map[uuid.UUID]*starState),
		reviewed: make(map[uuid.UUID]time.Time),
		rollback: rollbackOnFailure,
	}
	for _, c := range cards {
		s.stars[c.ID] = &starState{value: c.IsStarred}
	}
	return s
}

func (s *DeckSession) Len() int   { return len(s.cards) }
func (s *DeckSession) Index() int { return s.cur.index }

func (s *DeckSession) Current() *models.FlashcardCard {
	if len(s.cards) == 0 {
		return nil
	}
	return &s.cards[s.cur.index]
}

// Advance moves to the next card, front side up.
func (s *DeckSession) Advance() {
	s.cur.advance()
	s.revealed = false
}

// Retreat moves to the previous card, front side up.
func (s *DeckSession) Retreat() {
	s.cur.retreat()
	s.revealed = false
}

// JumpTo moves directly to card i; out-of-range targets are ignored.
func (s *DeckSession) JumpTo(i int) bool {
	if !s.cur.jumpTo(i) {
		return false
	}
	s.revealed = false
	return true
}

// Flip toggles between question and answer side of the current card.
func (s *DeckSession) Flip() {
	if len(s.cards) == 0 {
		return
	}
	s.revealed = !s.revealed
	if s.revealed {
		s.reviewed[s.cards[s.cur.index].ID] = time.Now()
	}
}

func (s *DeckSession) Revealed() bool { return s.revealed }

func (s *DeckSession) Starred(id uuid.UUID) bool {
	st, ok := s.stars[id]
	return ok && st.value
}

// StarPending reports whether a toggle for id is awaiting its remote
// confirmation.
func (s *DeckSession) StarPending(id uuid.UUID) bool {
	st, ok := s.stars[id]
	return ok && st.pending
}

// BeginStarToggle flips the visible star before the persistence call
// resolves and returns the new visible value. It refuses a second
// toggle while one is still pending for the same card.
func (s *DeckSession) BeginStarToggle(id uuid.UUID) (bool, bool) {
	st, ok := s.stars[id]
	if !ok || st.pending {
		return false, false
	}
	st.prev = st.value
	st.value = !st.value
	st.pending = true
	return st.value, true
}

// ResolveStarToggle settles the optimistic flip. On failure the value
// reverts to its pre-toggle state when the rollback policy is on;
// otherwise the optimistic value stands.
func (s *DeckSession) ResolveStarToggle(id uuid.UUID, err error) {
	st, ok := s.stars[id]
	if !ok || !st.pending {
		return
	}
	st.pending = false
	if err != nil && s.rollback {
		st.value = st.prev
	}
}

// LastReviewed returns when the card's answer was last revealed in this
// session, if it was.
func (s *DeckSession) LastReviewed(id uuid.UUID) (time.Time, bool) {
	ts, ok := s.reviewed[id]
	return ts, ok
}

// ReviewedCount reports how many distinct cards have been revealed.
func (s *DeckSession) ReviewedCount() int { return len(s.reviewed) }

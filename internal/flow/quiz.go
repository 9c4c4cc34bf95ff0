package flow

import (
	"sort"

	"lectura-cli/internal/models"
)

// QuizSession is the take flow over one quiz: traversal with the same
// wraparound discipline as deck study, last-write-wins answer
// recording, and a single terminal submit that freezes the session
// into a read-only results view.
type QuizSession struct {
	quiz      models.Quiz
	questions []models.QuizQuestion
	cur       cursor

	// answers maps question index to chosen option index. Questions in
	// this wire format carry no id of their own; position is identity.
	answers map[int]int

	submitted bool
	attempt   *models.QuizAttempt
}

func NewQuizSession(quiz models.Quiz, questions []models.QuizQuestion) *QuizSession {
	return &QuizSession{
		quiz:      quiz,
		questions: questions,
		cur:       cursor{length: len(questions)},
		answers:   make(map[int]int),
	}
}

func (s *QuizSession) Quiz() models.Quiz                { return s.quiz }
func (s *QuizSession) Len() int                         { return len(s.questions) }
func (s *QuizSession) Index() int                       { return s.cur.index }
func (s *QuizSession) Questions() []models.QuizQuestion { return s.questions }

func (s *QuizSession) Current() *models.QuizQuestion {
	if len(s.questions) == 0 {
		return nil
	}
	return &s.questions[s.cur.index]
}

func (s *QuizSession) Advance()          { s.cur.advance() }
func (s *QuizSession) Retreat()          { s.cur.retreat() }
func (s *QuizSession) JumpTo(i int) bool { return s.cur.jumpTo(i) }

// RecordAnswer upserts the selection for question qIdx. A later call
// for the same question overwrites the earlier one; no history is
// kept. Recording is rejected after submit and for out-of-range
// questions or options.
func (s *QuizSession) RecordAnswer(qIdx, optIdx int) bool {
	if s.submitted || qIdx < 0 || qIdx >= len(s.questions) {
		return false
	}
	if optIdx < 0 || optIdx >= len(s.questions[qIdx].Options) {
		return false
	}
	s.answers[qIdx] = optIdx
	return true
}

// Answer returns the recorded option index for question qIdx, if any.
func (s *QuizSession) Answer(qIdx int) (int, bool) {
	opt, ok := s.answers[qIdx]
	return opt, ok
}

func (s *QuizSession) AnsweredCount() int { return len(s.answers) }

// SubmitPayload converts the recorded selections into the attempt
// submission: one entry per answered question in question order,
// carrying the option text. Unanswered questions are omitted.
func (s *QuizSession) SubmitPayload() []models.SubmittedAnswer {
	idxs := make([]int, 0, len(s.answers))
	for qIdx := range s.answers {
		idxs = append(idxs, qIdx)
	}
	sort.Ints(idxs)

	out := make([]models.SubmittedAnswer, 0, len(idxs))
	for _, qIdx := range idxs {
		out = append(out, models.SubmittedAnswer{
			QuestionIndex:  qIdx,
			SelectedAnswer: s.questions[qIdx].Options[s.answers[qIdx]],
		})
	}
	return out
}

// MarkSubmitted freezes the session with the scored attempt. A failed
// submit never reaches here, so all selections stay intact and the
// user can retry.
func (s *QuizSession) MarkSubmitted(attempt models.QuizAttempt) {
	s.submitted = true
	s.attempt = &attempt
}

func (s *QuizSession) Submitted() bool              { return s.submitted }
func (s *QuizSession) Attempt() *models.QuizAttempt { return s.attempt }

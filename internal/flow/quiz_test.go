package flow

import (
	"testing"

	"lectura-cli/internal/models"
)

func makeQuiz(n int) (models.Quiz, []models.QuizQuestion) {
	qs := make([]models.QuizQuestion, n)
	for i := range qs {
		qs[i] = models.QuizQuestion{
			Question: "q",
			Options:  []string{"opt A", "opt B", "opt C", "opt D"},
		}
	}
	return models.Quiz{Title: "test quiz", QuestionCount: n}, qs
}

func TestQuizSession_AdvanceWrapsFullCycle(t *testing.T) {
	quiz, qs := makeQuiz(5)
	s := NewQuizSession(quiz, qs)
	start := s.Index()
	for i := 0; i < 5; i++ {
		s.Advance()
	}
	if s.Index() != start {
		t.Errorf("expected index %d after full cycle, got %d", start, s.Index())
	}
}

func TestQuizSession_RecordAnswerLastWriteWins(t *testing.T) {
	quiz, qs := makeQuiz(3)
	s := NewQuizSession(quiz, qs)

	if !s.RecordAnswer(1, 0) {
		t.Fatal("first record should succeed")
	}
	if !s.RecordAnswer(1, 3) {
		t.Fatal("overwrite should succeed")
	}

	opt, ok := s.Answer(1)
	if !ok || opt != 3 {
		t.Fatalf("expected option 3, got %d (ok=%v)", opt, ok)
	}
	if s.AnsweredCount() != 1 {
		t.Fatalf("expected 1 answered question, got %d", s.AnsweredCount())
	}

	payload := s.SubmitPayload()
	if len(payload) != 1 {
		t.Fatalf("expected payload length 1, got %d", len(payload))
	}
	if payload[0].SelectedAnswer != "opt D" {
		t.Errorf("expected last written answer 'opt D', got %q", payload[0].SelectedAnswer)
	}
}

func TestQuizSession_RecordAnswerRejectsInvalid(t *testing.T) {
	quiz, qs := makeQuiz(2)
	s := NewQuizSession(quiz, qs)

	tests := []struct {
		name string
		qIdx int
		opt  int
	}{
		{"negative question", -1, 0},
		{"question past end", 2, 0},
		{"negative option", 0, -1},
		{"option past end", 0, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if s.RecordAnswer(tc.qIdx, tc.opt) {
				t.Errorf("RecordAnswer(%d, %d) should be rejected", tc.qIdx, tc.opt)
			}
		})
	}
	if s.AnsweredCount() != 0 {
		t.Fatalf("expected no answers recorded, got %d", s.AnsweredCount())
	}
}

func TestQuizSession_SubmitPayloadOmitsUnanswered(t *testing.T) {
	quiz, qs := makeQuiz(3)
	s := NewQuizSession(quiz, qs)

	// Answer questions 1 and 3 only (indices 0 and 2), out of order.
	s.RecordAnswer(2, 1)
	s.RecordAnswer(0, 2)

	payload := s.SubmitPayload()
	if len(payload) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(payload))
	}
	if payload[0].QuestionIndex != 0 || payload[1].QuestionIndex != 2 {
		t.Errorf("expected question indices {0, 2}, got {%d, %d}",
			payload[0].QuestionIndex, payload[1].QuestionIndex)
	}
	if payload[0].SelectedAnswer != "opt C" {
		t.Errorf("expected 'opt C' for question 0, got %q", payload[0].SelectedAnswer)
	}
	if payload[1].SelectedAnswer != "opt B" {
		t.Errorf("expected 'opt B' for question 2, got %q", payload[1].SelectedAnswer)
	}
}

func TestQuizSession_SubmitFreezesAnswers(t *testing.T) {
	quiz, qs := makeQuiz(2)
	s := NewQuizSession(quiz, qs)
	s.RecordAnswer(0, 1)

	score := 50.0
	s.MarkSubmitted(models.QuizAttempt{ScorePercent: &score})

	if !s.Submitted() {
		t.Fatal("session should be in results state")
	}
	if s.RecordAnswer(1, 0) {
		t.Error("recording after submit should be rejected")
	}
	if s.Attempt() == nil || *s.Attempt().ScorePercent != 50.0 {
		t.Error("attempt result should be retained")
	}
}

func TestQuizSession_FailedSubmitKeepsSelections(t *testing.T) {
	quiz, qs := makeQuiz(3)
	s := NewQuizSession(quiz, qs)
	s.RecordAnswer(0, 0)
	s.RecordAnswer(1, 1)

	// A failed submit never calls MarkSubmitted; the payload must be
	// rebuildable with all selections intact.
	first := s.SubmitPayload()
	second := s.SubmitPayload()

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected both payloads to have 2 entries, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("payload entry %d changed between retries: %+v vs %+v", i, first[i], second[i])
		}
	}
	if s.Submitted() {
		t.Error("session must stay in answering state until a submit succeeds")
	}
}

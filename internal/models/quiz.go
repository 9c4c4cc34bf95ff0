package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Quiz struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	SummaryID     *uuid.UUID      `json:"summary_id"`
	Title         string          `json:"title"`
	QuestionsJSON json.RawMessage `json:"questions"`
	QuestionCount int             `json:"question_count"`
	IsFavorite    bool            `json:"is_favorite"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Questions decodes the embedded question list. Quizzes fetched from a
// list endpoint may omit it.
func (q *Quiz) Questions() ([]QuizQuestion, error) {
	if len(q.QuestionsJSON) == 0 {
		return nil, nil
	}
	var out []QuizQuestion
	if err := json.Unmarshal(q.QuestionsJSON, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type QuizQuestion struct {
	Question     string   `json:"question"`
	Type         string   `json:"type"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	Hint         string   `json:"hint"`
	Difficulty   string   `json:"difficulty"`
}

type GenerateQuizRequest struct {
	SummaryID    uuid.UUID `json:"summary_id"`
	Title        string    `json:"title"`
	NumQuestions int       `json:"num_questions"`
	Difficulty   string    `json:"difficulty"`
}

type QuizAttempt struct {
	ID           uuid.UUID  `json:"id"`
	QuizID       uuid.UUID  `json:"quiz_id"`
	ScorePercent *float64   `json:"score_percent"`
	CorrectCount *int       `json:"correct_count"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

// SubmittedAnswer pairs a question's position with the chosen option
// text, the wire format the attempt endpoint scores against.
type SubmittedAnswer struct {
	QuestionIndex  int    `json:"question_index"`
	SelectedAnswer string `json:"selected_answer"`
}

type SubmitAttemptRequest struct {
	Answers []SubmittedAnswer `json:"answers"`
}

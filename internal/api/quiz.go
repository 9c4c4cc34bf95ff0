package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
)

func (c *Client) GenerateQuiz(ctx context.Context, req models.GenerateQuizRequest) (*GenerateResult, []flow.Collection, error) {
	var out struct {
		JobID  uuid.UUID `json:"job_id"`
		QuizID uuid.UUID `json:"quiz_id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/quizzes/generate", req, &out); err != nil {
		return nil, nil, err
	}
	return &GenerateResult{JobID: out.JobID, ResultID: out.QuizID}, []flow.Collection{flow.Quizzes}, nil
}

func (c *Client) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	var out struct {
		Quizzes []models.Quiz `json:"quizzes"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/quizzes/", nil, &out); err != nil {
		return nil, err
	}
	return out.Quizzes, nil
}

func (c *Client) GetQuiz(ctx context.Context, id uuid.UUID) (*models.Quiz, error) {
	var out models.Quiz
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/quizzes/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteQuiz(ctx context.Context, id uuid.UUID) ([]flow.Collection, error) {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/v1/quizzes/"+id.String(), nil, nil); err != nil {
		return nil, err
	}
	return []flow.Collection{flow.Quizzes}, nil
}

// StartAttempt opens a scoring attempt for the quiz and returns it.
func (c *Client) StartAttempt(ctx context.Context, quizID uuid.UUID) (*models.QuizAttempt, error) {
	var out models.QuizAttempt
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/quizzes/"+quizID.String()+"/start", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitAttempt sends the answered questions once and returns the
// scored attempt. The attempt can be submitted only once; a failure
// here leaves the attempt open for retry.
func (c *Client) SubmitAttempt(ctx context.Context, attemptID uuid.UUID, answers []models.SubmittedAnswer) (*models.QuizAttempt, error) {
	var out models.QuizAttempt
	req := models.SubmitAttemptRequest{Answers: answers}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/quiz-attempts/"+attemptID.String()+"/submit", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

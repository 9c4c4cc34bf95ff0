package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
)

func (c *Client) ListSummaries(ctx context.Context) ([]models.Summary, error) {
	var out struct {
		Summaries []models.Summary `json:"summaries"`
		Total     int              `json:"total"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/summaries/", nil, &out); err != nil {
		return nil, err
	}
	return out.Summaries, nil
}

func (c *Client) GetSummary(ctx context.Context, id uuid.UUID) (*models.Summary, error) {
	var out models.Summary
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/summaries/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSummary(ctx context.Context, id uuid.UUID) ([]flow.Collection, error) {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/v1/summaries/"+id.String(), nil, nil); err != nil {
		return nil, err
	}
	// Decks and quizzes hang off summaries; their rows display the
	// parent title.
	return []flow.Collection{flow.Summaries, flow.Decks, flow.Quizzes}, nil
}

func (c *Client) ToggleSummaryFavorite(ctx context.Context, id uuid.UUID) ([]flow.Collection, error) {
	if err := c.doJSON(ctx, http.MethodPut, "/api/v1/summaries/"+id.String()+"/favorite", nil, nil); err != nil {
		return nil, err
	}
	return []flow.Collection{flow.Summaries}, nil
}

// GenerateResult carries the ids of the queued generation job and the
// record it will fill in.
type GenerateResult struct {
	JobID    uuid.UUID `json:"job_id"`
	ResultID uuid.UUID
}

func (c *Client) GenerateSummary(ctx context.Context, req models.GenerateSummaryRequest) (*GenerateResult, []flow.Collection, error) {
	var out struct {
		JobID     uuid.UUID `json:"job_id"`
		SummaryID uuid.UUID `json:"summary_id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/summaries/generate", req, &out); err != nil {
		return nil, nil, err
	}
	return &GenerateResult{JobID: out.JobID, ResultID: out.SummaryID}, []flow.Collection{flow.Summaries}, nil
}

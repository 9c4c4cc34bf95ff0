package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"lectura-cli/internal/models"
)

func (c *Client) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var out models.Job
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/jobs/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

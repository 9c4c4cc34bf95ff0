package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"lectura-cli/internal/models"
)

// AskQuestion sends one chat turn grounded on a summary. History rides
// along in the request; the backend keeps no conversation state.
func (c *Client) AskQuestion(ctx context.Context, summaryID uuid.UUID, message string, history []models.ChatMessage) (string, error) {
	var out models.ChatResponse
	req := models.ChatRequest{Message: message, History: history}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/summaries/"+summaryID.String()+"/chat", req, &out); err != nil {
		return "", err
	}
	return out.Reply, nil
}

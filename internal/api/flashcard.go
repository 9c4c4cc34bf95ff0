package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
)

func (c *Client) GenerateFlashcards(ctx context.Context, req models.GenerateFlashcardsRequest) (*GenerateResult, []flow.Collection, error) {
	var out struct {
		JobID  uuid.UUID `json:"job_id"`
		DeckID uuid.UUID `json:"deck_id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/flashcards/generate", req, &out); err != nil {
		return nil, nil, err
	}
	return &GenerateResult{JobID: out.JobID, ResultID: out.DeckID}, []flow.Collection{flow.Decks}, nil
}

func (c *Client) ListDecks(ctx context.Context) ([]models.FlashcardDeck, error) {
	var out struct {
		Decks []models.FlashcardDeck `json:"decks"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/flashcards/decks/", nil, &out); err != nil {
		return nil, err
	}
	return out.Decks, nil
}

func (c *Client) GetDeck(ctx context.Context, id uuid.UUID) (*models.DeckWithCards, error) {
	var out models.DeckWithCards
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/flashcards/decks/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDeck(ctx context.Context, id uuid.UUID) ([]flow.Collection, error) {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/v1/flashcards/decks/"+id.String(), nil, nil); err != nil {
		return nil, err
	}
	return []flow.Collection{flow.Decks}, nil
}

func (c *Client) ToggleDeckFavorite(ctx context.Context, id uuid.UUID) ([]flow.Collection, error) {
	if err := c.doJSON(ctx, http.MethodPut, "/api/v1/flashcards/decks/"+id.String()+"/favorite", nil, nil); err != nil {
		return nil, err
	}
	return []flow.Collection{flow.Decks}, nil
}

// ToggleCardStar persists a star flip. The caller has already applied
// the optimistic value; this is the confirmation leg.
func (c *Client) ToggleCardStar(ctx context.Context, cardID uuid.UUID) error {
	return c.doJSON(ctx, http.MethodPut, "/api/v1/flashcards/cards/"+cardID.String()+"/star", nil, nil)
}

// RateCard posts a spaced-repetition rating (0=Again .. 3=Easy).
func (c *Client) RateCard(ctx context.Context, cardID uuid.UUID, rating int) error {
	req := models.CardRatingRequest{Rating: rating}
	return c.doJSON(ctx, http.MethodPost, "/api/v1/flashcards/cards/"+cardID.String()+"/rating", req, nil)
}

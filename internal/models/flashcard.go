package models

import (
	"time"

	"github.com/google/uuid"
)

type FlashcardDeck struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	SummaryID  *uuid.UUID `json:"summary_id"`
	Title      string     `json:"title"`
	CardCount  int        `json:"card_count"`
	IsFavorite bool       `json:"is_favorite"`
	CreatedAt  time.Time  `json:"created_at"`
}

type FlashcardCard struct {
	ID             uuid.UUID  `json:"id"`
	DeckID         uuid.UUID  `json:"deck_id"`
	Front          string     `json:"front"`
	Back           string     `json:"back"`
	Mnemonic       *string    `json:"mnemonic"`
	Example        *string    `json:"example"`
	Topic          string     `json:"topic"`
	Difficulty     int        `json:"difficulty"` // 1=easy, 2=medium, 3=hard
	IsStarred      bool       `json:"is_starred"`
	LastReviewedAt *time.Time `json:"last_reviewed_at"`
}

type GenerateFlashcardsRequest struct {
	SummaryID uuid.UUID `json:"summary_id"`
	Title     string    `json:"title"`
	NumCards  int       `json:"num_cards"`
	Strategy  string    `json:"strategy"` // "term_definition" | "question_answer"
}

type CardRatingRequest struct {
	Rating int `json:"rating"` // 0=Again, 1=Hard, 2=Good, 3=Easy
}

type DeckWithCards struct {
	Deck  FlashcardDeck   `json:"deck"`
	Cards []FlashcardCard `json:"cards"`
}

package tui

import (
	"github.com/google/uuid"

	"lectura-cli/internal/api"
	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
)

// View-scoped result messages carry the generation counter of the
// screen that issued them; results arriving after navigation are
// discarded instead of mutating a screen that no longer exists.
type (
	authDoneMsg struct {
		resp *models.LoginResponse
		err  error
	}

	logoutDoneMsg struct{ err error }

	documentsMsg struct {
		gen   int
		items []models.Content
		err   error
	}

	summariesMsg struct {
		gen   int
		items []models.Summary
		err   error
	}

	decksMsg struct {
		gen   int
		items []models.FlashcardDeck
		err   error
	}

	quizzesMsg struct {
		gen   int
		items []models.Quiz
		err   error
	}

	deckOpenedMsg struct {
		gen  int
		deck *models.DeckWithCards
		err  error
	}

	quizOpenedMsg struct {
		gen       int
		quiz      *models.Quiz
		questions []models.QuizQuestion
		attempt   *models.QuizAttempt
		err       error
	}

	generateDoneMsg struct {
		gen  int
		what string
		cols []flow.Collection
		err  error
	}

	deleteDoneMsg struct {
		gen  int
		cols []flow.Collection
		err  error
	}

	favoriteDoneMsg struct {
		gen  int
		cols []flow.Collection
		err  error
	}

	submitDoneMsg struct {
		gen     int
		attempt *models.QuizAttempt
		err     error
	}

	chatReplyMsg struct {
		gen   int
		reply string
		err   error
	}

	starResolvedMsg struct {
		cardID uuid.UUID
		err    error
	}

	rateResolvedMsg struct {
		cardID uuid.UUID
		err    error
	}

	wsConnectedMsg struct {
		stream *api.JobStream
		err    error
	}

	jobEventMsg struct {
		ev  *api.JobEvent
		err error
	}

	clearNoticeMsg struct{ seq int }
)

type refreshDoneMsg struct {
	tokens *models.AuthTokens
	err    error
}

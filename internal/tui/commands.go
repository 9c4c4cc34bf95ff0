package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"lectura-cli/internal/api"
	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
)

// Commands capture the issuing screen's context and generation counter
// at creation time, so a result arriving after navigation identifies
// itself as stale.

func (a *App) loginCmd(req models.LoginRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		resp, err := a.client.Login(ctx, req)
		return authDoneMsg{resp: resp, err: err}
	}
}

func (a *App) registerCmd(req models.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		resp, err := a.client.Register(ctx, req)
		return authDoneMsg{resp: resp, err: err}
	}
}

func (a *App) uploadCmd(path, title string) tea.Cmd {
	ctx, gen := a.viewCtx, a.gen
	return func() tea.Msg {
		_, cols, err := a.client.Upload(ctx, path, title)
		return generateDoneMsg{gen: gen, what: "upload", cols: cols, err: err}
	}
}

func (a *App) validateYouTubeCmd(url string) tea.Cmd {
	ctx, gen := a.viewCtx, a.gen
	return func() tea.Msg {
		_, cols, err := a.client.ValidateYouTube(ctx, url)
		return generateDoneMsg{gen: gen, what: "YouTube link", cols: cols, err: err}
	}
}

func (a *App) fetchDocumentsCmd() tea.Cmd {
	ctx, gen := a.viewCtx, a.gen
	return func() tea.Msg {
		items, err := a.client.ListContent(ctx)
		return documentsMsg{gen: gen, items: items, err: err}
	}
}

func (a *App) fetchSummariesCmd() tea.Cmd {
	ctx, gen := a.viewCtx, a.gen
	return func() tea.Msg {
		items, err := a.client.ListSummaries(ctx)
		return summariesMsg{gen: gen, items: items, err: err}
	}
}

func (a *App) fetchDecksCmd() tea.Cmd {
	ctx, gen := a.viewCtx, a.gen
	return func() tea.Msg {
		items, err := a.client.ListDecks(ctx)
		return decksMsg{gen: gen, items: items, err: err}
	}
}

func (a *App) fetchQuizzesCmd() tea.Cmd {
	ctx, gen := a.viewCtx, a.gen
	return func() tea.Msg {
		items, err := a.client.ListQuizzes(ctx)
		return quizzesMsg{gen: gen, items: items, err: err}
	}
}

func (a *App) openDeckCmd(id uuid.UUID) tea.Cmd {
	ctx, gen := a.viewCtx, a.gen
	return func() tea.Msg {
		deck, err := a.client.GetDeck(ctx, id)
		return deckOpenedMsg{gen: gen, deck: deck, err: err}
	}
}

// openQuizCmd fetches the quiz with its questions and opens a scoring
// attempt in one step.
func (a *App) openQuizCmd(id uuid.UUID) tea.Cmd {
	ctx, gen := a.viewCtx, a.gen
	return func() tea.Msg {
		quiz, err := a.client.GetQuiz(ctx, id)
		if err != nil {
			return quizOpenedMsg{gen: gen, err: err}
		}
		questions, err := quiz.Questions()
		if err != nil {
			return quizOpenedMsg{gen: gen, err: err}
		}
		attempt, err := a.client.StartAttempt(ctx, id)
		if err != nil {
			return quizOpenedMsg{gen: gen, err: err}
		}
		return quizOpenedMsg{gen: gen, quiz: quiz, questions: questions, attempt: attempt}
	}
}

// deleteCmd wraps one destructive call; do reports which collections
// the deletion invalidated.
func (a *App) deleteCmd(do func(ctx context.Context) ([]flow.Collection, error)) tea.Cmd {
	ctx, gen := a.viewCtx, a.gen
	return func() tea.Msg {
		cols, err := do(ctx)
		return deleteDoneMsg{gen: gen, cols: cols, err: err}
	}
}

// favoriteCmd wraps one favorite toggle.
func (a *App) favoriteCmd(do func(ctx context.Context) ([]flow.Collection, error)) tea.Cmd {
	ctx, gen := a.viewCtx, a.gen
	return func() tea.Msg {
		cols, err := do(ctx)
		return favoriteDoneMsg{gen: gen, cols: cols, err: err}
	}
}

// generateCmd wraps one generation request; what names the artifact for
// the notice text.
func (a *App) generateCmd(what string, do func(ctx context.Context) (*api.GenerateResult, []flow.Collection, error)) tea.Cmd {
	ctx, gen := a.viewCtx, a.gen
	return func() tea.Msg {
		_, cols, err := do(ctx)
		return generateDoneMsg{gen: gen, what: what, cols: cols, err: err}
	}
}

func (a *App) submitAttemptCmd(attemptID uuid.UUID, answers []models.SubmittedAnswer) tea.Cmd {
	ctx, gen := a.viewCtx, a.gen
	return func() tea.Msg {
		attempt, err := a.client.SubmitAttempt(ctx, attemptID, answers)
		return submitDoneMsg{gen: gen, attempt: attempt, err: err}
	}
}

func (a *App) askQuestionCmd(summaryID uuid.UUID, message string, history []models.ChatMessage) tea.Cmd {
	ctx, gen := a.viewCtx, a.gen
	return func() tea.Msg {
		reply, err := a.client.AskQuestion(ctx, summaryID, message, history)
		return chatReplyMsg{gen: gen, reply: reply, err: err}
	}
}

// toggleStarCmd is the confirmation leg of the optimistic star flip; it
// is deliberately not generation-scoped because the deck session it
// resolves against survives list refreshes.
func (a *App) toggleStarCmd(cardID uuid.UUID) tea.Cmd {
	ctx := a.viewCtx
	return func() tea.Msg {
		err := a.client.ToggleCardStar(ctx, cardID)
		return starResolvedMsg{cardID: cardID, err: err}
	}
}

func (a *App) rateCardCmd(cardID uuid.UUID, rating int) tea.Cmd {
	ctx := a.viewCtx
	return func() tea.Msg {
		err := a.client.RateCard(ctx, cardID, rating)
		return rateResolvedMsg{cardID: cardID, err: err}
	}
}

func (a *App) refreshTokensCmd() tea.Cmd {
	refresh := a.sess.RefreshToken()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		tokens, err := a.client.Refresh(ctx, refresh)
		return refreshDoneMsg{tokens: tokens, err: err}
	}
}

func (a *App) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		// Best effort against the backend; the local session ends
		// regardless of the outcome.
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		err := a.client.Logout(ctx)
		return logoutDoneMsg{err: err}
	}
}

func (a *App) dialWSCmd() tea.Cmd {
	wsURL, token := a.cfg.WSURL, a.sess.AccessToken()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		stream, err := api.DialJobStream(ctx, wsURL, token)
		return wsConnectedMsg{stream: stream, err: err}
	}
}

// listenWSCmd blocks for the next job event; the handler re-issues it
// after each event so the stream is read for the program's lifetime.
func (a *App) listenWSCmd(stream *api.JobStream) tea.Cmd {
	return func() tea.Msg {
		ev, err := stream.Next()
		return jobEventMsg{ev: ev, err: err}
	}
}

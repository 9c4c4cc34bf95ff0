// Package tui is the terminal front end: one Bubble Tea program whose
// screens own the fetch lifecycles and hand the interaction state to
// the flow package. All remote work runs in commands; every
// view-scoped result carries the generation counter of the screen
// that issued it, and navigation cancels the old screen's context so
// late results are discarded instead of touching dead state.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"lectura-cli/internal/api"
	"lectura-cli/internal/config"
	"lectura-cli/internal/flow"
	"lectura-cli/internal/session"
)

type screen int

const (
	scrLogin screen = iota
	scrDocuments
	scrSummaries
	scrSummaryDetail
	scrDecks
	scrStudy
	scrQuizzes
	scrTake
	scrChat
)

const noticeTTL = 4 * time.Second

type App struct {
	cfg      *config.Config
	log      *zap.Logger
	client   *api.Client
	sess     *session.Session
	registry *flow.Registry

	width  int
	height int

	screen     screen
	gen        int
	viewCtx    context.Context
	viewCancel context.CancelFunc

	notice    string
	noticeErr bool
	noticeSeq int

	// Overlays. The confirm modal gates destructive actions; the form
	// collects upload and generation input.
	confirm *confirmState
	form    *formView

	stream    *api.JobStream
	jobStatus string

	login         *loginView
	documents     *documentsView
	summaries     *summariesView
	summaryDetail *summaryDetailView
	decks         *decksView
	study         *studyView
	quizzes       *quizzesView
	take          *takeView
	chat          *chatView
}

func NewApp(cfg *config.Config, log *zap.Logger, client *api.Client, sess *session.Session) *App {
	a := &App{
		cfg:      cfg,
		log:      log,
		client:   client,
		sess:     sess,
		registry: flow.NewRegistry(),
		screen:   scrLogin,
	}
	a.viewCtx, a.viewCancel = context.WithCancel(context.Background())

	a.login = newLoginView()
	a.documents = newDocumentsView()
	a.summaries = newSummariesView()
	a.summaryDetail = newSummaryDetailView()
	a.decks = newDecksView()
	a.study = newStudyView()
	a.quizzes = newQuizzesView()
	a.take = newTakeView()
	a.chat = newChatView()

	// Mutations declare what they invalidated; the registry marks the
	// affected lists stale and the active screen refetches.
	a.registry.Subscribe(flow.Documents, func() { a.documents.stale = true })
	a.registry.Subscribe(flow.Summaries, func() { a.summaries.stale = true })
	a.registry.Subscribe(flow.Decks, func() { a.decks.stale = true })
	a.registry.Subscribe(flow.Quizzes, func() { a.quizzes.stale = true })

	return a
}

func (a *App) Init() tea.Cmd {
	if !a.sess.Authenticated() {
		return a.login.init()
	}
	if a.sess.Expired(time.Now()) {
		if a.sess.RefreshToken() != "" {
			return a.refreshTokensCmd()
		}
		a.screen = scrLogin
		return a.login.init()
	}
	return tea.Batch(a.enter(scrDocuments), a.dialWSCmd())
}

// navigate cancels the leaving screen's context, bumps the generation
// counter and runs the entering screen's initial fetch.
func (a *App) navigate(s screen) tea.Cmd {
	a.viewCancel()
	a.viewCtx, a.viewCancel = context.WithCancel(context.Background())
	a.gen++
	a.form = nil
	a.confirm = nil
	return a.enter(s)
}

func (a *App) enter(s screen) tea.Cmd {
	a.screen = s
	switch s {
	case scrDocuments:
		a.documents.stale = false
		return tea.Batch(a.documents.startLoad(), a.fetchDocumentsCmd())
	case scrSummaries:
		a.summaries.stale = false
		return tea.Batch(a.summaries.startLoad(), a.fetchSummariesCmd())
	case scrDecks:
		a.decks.stale = false
		a.decks.opening = false
		return tea.Batch(a.decks.startLoad(), a.fetchDecksCmd())
	case scrQuizzes:
		a.quizzes.stale = false
		a.quizzes.opening = false
		return tea.Batch(a.quizzes.startLoad(), a.fetchQuizzesCmd())
	}
	return nil
}

// consumeStale refetches the active list when a mutation or job event
// invalidated it.
func (a *App) consumeStale() tea.Cmd {
	switch a.screen {
	case scrDocuments:
		if a.documents.stale {
			a.documents.stale = false
			return a.fetchDocumentsCmd()
		}
	case scrSummaries:
		if a.summaries.stale {
			a.summaries.stale = false
			return a.fetchSummariesCmd()
		}
	case scrDecks:
		if a.decks.stale {
			a.decks.stale = false
			return a.fetchDecksCmd()
		}
	case scrQuizzes:
		if a.quizzes.stale {
			a.quizzes.stale = false
			return a.fetchQuizzesCmd()
		}
	}
	return nil
}

func (a *App) setNotice(text string, isErr bool) tea.Cmd {
	a.notice = text
	a.noticeErr = isErr
	a.noticeSeq++
	seq := a.noticeSeq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.summaryDetail.resize(msg.Width, msg.Height)
		a.chat.resize(msg.Width, msg.Height)
		return a, nil

	case clearNoticeMsg:
		if msg.seq == a.noticeSeq {
			a.notice = ""
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.viewCancel()
			return a, tea.Quit
		}
		return a.handleKey(msg)
	}

	cmd := a.handleResult(msg)
	return a, tea.Batch(cmd, a.consumeStale())
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays swallow keys first.
	if a.confirm != nil {
		open, cmd := a.confirm.update(msg)
		if !open {
			a.confirm = nil
		}
		return a, cmd
	}
	if a.form != nil {
		if msg.String() == "esc" && !a.form.trigger.InFlight() {
			a.form = nil
			return a, nil
		}
		return a, a.form.update(msg)
	}

	switch a.screen {
	case scrLogin:
		return a, a.login.update(a, msg)
	case scrDocuments:
		return a, a.documents.update(a, msg)
	case scrSummaries:
		return a, a.summaries.update(a, msg)
	case scrSummaryDetail:
		return a, a.summaryDetail.update(a, msg)
	case scrDecks:
		return a, a.decks.update(a, msg)
	case scrStudy:
		return a, a.study.update(a, msg)
	case scrQuizzes:
		return a, a.quizzes.update(a, msg)
	case scrTake:
		return a, a.take.update(a, msg)
	case scrChat:
		return a, a.chat.update(a, msg)
	}
	return a, nil
}

// cycleMain moves between the four top-level collections.
func (a *App) cycleMain(back bool) tea.Cmd {
	order := []screen{scrDocuments, scrSummaries, scrDecks, scrQuizzes}
	cur := 0
	for i, s := range order {
		if s == a.screen {
			cur = i
		}
	}
	if back {
		cur = (cur - 1 + len(order)) % len(order)
	} else {
		cur = (cur + 1) % len(order)
	}
	return a.navigate(order[cur])
}

func (a *App) View() string {
	var body string
	switch a.screen {
	case scrLogin:
		body = a.login.view(a)
	case scrDocuments:
		body = a.documents.view(a)
	case scrSummaries:
		body = a.summaries.view(a)
	case scrSummaryDetail:
		body = a.summaryDetail.view(a)
	case scrDecks:
		body = a.decks.view(a)
	case scrStudy:
		body = a.study.view(a)
	case scrQuizzes:
		body = a.quizzes.view(a)
	case scrTake:
		body = a.take.view(a)
	case scrChat:
		body = a.chat.view(a)
	}

	if a.form != nil {
		body += "\n\n" + a.form.view()
	}
	if a.confirm != nil {
		body += "\n\n" + a.confirm.view()
	}
	if a.jobStatus != "" {
		body += "\n" + dimStyle.Render("⋯ "+a.jobStatus)
	}
	if a.notice != "" {
		style := noticeStyle
		if a.noticeErr {
			style = errorStyle
		}
		body += "\n" + style.Render(a.notice)
	}
	return body
}

// header renders the tab bar for the four main collections.
func (a *App) header() string {
	tabs := []struct {
		s    screen
		name string
	}{
		{scrDocuments, "Documents"},
		{scrSummaries, "Summaries"},
		{scrDecks, "Flashcards"},
		{scrQuizzes, "Quizzes"},
	}
	out := titleStyle.Render("Lectura") + " "
	for _, t := range tabs {
		if t.s == a.screen {
			out += activeTabStyle.Render(t.name)
		} else {
			out += tabStyle.Render(t.name)
		}
	}
	return out + "\n\n"
}

package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"lectura-cli/internal/flow"
)

// handleResult settles async command results. Every view-scoped
// message is checked against the current generation first; stale
// results are dropped without touching any view.
func (a *App) handleResult(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case authDoneMsg:
		a.login.done()
		if msg.err != nil {
			a.login.errText = msg.err.Error()
			return nil
		}
		if err := a.sess.Begin(&msg.resp.User, msg.resp.Tokens); err != nil {
			a.log.Warn("session persist failed", zap.Error(err))
		}
		a.login.reset()
		return tea.Batch(a.navigate(scrDocuments), a.dialWSCmd())

	case refreshDoneMsg:
		if msg.err != nil {
			a.log.Warn("token refresh failed", zap.Error(msg.err))
			if err := a.sess.End(); err != nil {
				a.log.Warn("session teardown failed", zap.Error(err))
			}
			a.screen = scrLogin
			return a.login.init()
		}
		if err := a.sess.UpdateTokens(*msg.tokens); err != nil {
			a.log.Warn("session persist failed", zap.Error(err))
		}
		return tea.Batch(a.enter(scrDocuments), a.dialWSCmd())

	case logoutDoneMsg:
		if msg.err != nil {
			a.log.Warn("server-side logout failed", zap.Error(msg.err))
		}
		if a.stream != nil {
			a.stream.Close()
			a.stream = nil
		}
		if err := a.sess.End(); err != nil {
			a.log.Warn("session teardown failed", zap.Error(err))
		}
		a.screen = scrLogin
		return a.login.init()

	case documentsMsg:
		if msg.gen != a.gen {
			return nil
		}
		a.documents.list.finish(msg.items, msg.err)
		if msg.err != nil {
			return a.setNotice("Could not load documents: "+msg.err.Error(), true)
		}
		return nil

	case summariesMsg:
		if msg.gen != a.gen {
			return nil
		}
		a.summaries.list.finish(msg.items, msg.err)
		if msg.err != nil {
			return a.setNotice("Could not load summaries: "+msg.err.Error(), true)
		}
		return nil

	case decksMsg:
		if msg.gen != a.gen {
			return nil
		}
		a.decks.list.finish(msg.items, msg.err)
		if msg.err != nil {
			return a.setNotice("Could not load decks: "+msg.err.Error(), true)
		}
		return nil

	case quizzesMsg:
		if msg.gen != a.gen {
			return nil
		}
		a.quizzes.list.finish(msg.items, msg.err)
		if msg.err != nil {
			return a.setNotice("Could not load quizzes: "+msg.err.Error(), true)
		}
		return nil

	case deckOpenedMsg:
		if msg.gen != a.gen {
			return nil
		}
		a.decks.opening = false
		if msg.err != nil {
			return a.setNotice("Could not open deck: "+msg.err.Error(), true)
		}
		a.study.open(msg.deck, a.cfg.StarRollbackOnFailure)
		a.screen = scrStudy
		return nil

	case quizOpenedMsg:
		if msg.gen != a.gen {
			return nil
		}
		a.quizzes.opening = false
		if msg.err != nil {
			return a.setNotice("Could not open quiz: "+msg.err.Error(), true)
		}
		a.take.open(msg.quiz, msg.questions, msg.attempt)
		a.screen = scrTake
		return nil

	case generateDoneMsg:
		if msg.gen != a.gen {
			return nil
		}
		if a.form != nil {
			a.form.done()
		}
		if msg.err != nil {
			// The triggering collection stays untouched; the form stays
			// open so the input survives.
			if a.form != nil {
				a.form.errText = msg.err.Error()
				return nil
			}
			return a.setNotice(msg.err.Error(), true)
		}
		a.form = nil
		a.registry.Invalidate(msg.cols...)
		return a.setNotice(msg.what, false)

	case deleteDoneMsg:
		if msg.gen != a.gen {
			return nil
		}
		// The modal closes after resolution either way.
		a.confirm = nil
		if msg.err != nil {
			return a.setNotice("Delete failed: "+msg.err.Error(), true)
		}
		a.registry.Invalidate(msg.cols...)
		return a.setNotice("Deleted", false)

	case favoriteDoneMsg:
		if msg.gen != a.gen {
			return nil
		}
		if msg.err != nil {
			return a.setNotice("Favorite not saved: "+msg.err.Error(), true)
		}
		a.registry.Invalidate(msg.cols...)
		return nil

	case submitDoneMsg:
		if msg.gen != a.gen {
			return nil
		}
		a.take.trigger.Done()
		if msg.err != nil {
			// Selections are intact; the user can submit again.
			return a.setNotice("Submit failed: "+msg.err.Error(), true)
		}
		a.take.session.MarkSubmitted(*msg.attempt)
		return nil

	case chatReplyMsg:
		if msg.gen != a.gen {
			return nil
		}
		if msg.err != nil {
			a.log.Warn("chat send failed", zap.Error(msg.err))
			a.chat.thread.Fail(time.Now())
		} else {
			a.chat.thread.Receive(msg.reply, time.Now())
		}
		a.chat.refresh()
		return nil

	case starResolvedMsg:
		if a.study.session != nil {
			a.study.session.ResolveStarToggle(msg.cardID, msg.err)
		}
		if msg.err != nil {
			return a.setNotice("Star not saved: "+msg.err.Error(), true)
		}
		return nil

	case rateResolvedMsg:
		if msg.err != nil {
			return a.setNotice("Rating not saved: "+msg.err.Error(), true)
		}
		return nil

	case wsConnectedMsg:
		if msg.err != nil {
			// Job pushes are a convenience; lists still refresh on entry.
			a.log.Warn("job stream unavailable", zap.Error(msg.err))
			return nil
		}
		a.stream = msg.stream
		return a.listenWSCmd(a.stream)

	case jobEventMsg:
		return a.handleJobEvent(msg)
	}
	return nil
}

func (a *App) handleJobEvent(msg jobEventMsg) tea.Cmd {
	if msg.err != nil {
		a.log.Warn("job stream closed", zap.Error(msg.err))
		if a.stream != nil {
			a.stream.Close()
			a.stream = nil
		}
		return nil
	}

	listen := a.listenWSCmd(a.stream)
	ev := msg.ev
	switch {
	case ev.Status != nil:
		a.jobStatus = fmt.Sprintf("%s (~%ds left)", ev.Status.StepName, ev.Status.EstimatedSecondsRemaining)
		return listen
	case ev.Completed != nil:
		a.jobStatus = ""
		a.registry.Invalidate(collectionsForResult(ev.Completed.ResultType)...)
		return tea.Batch(listen, a.setNotice("Generation finished", false))
	case ev.Failed != nil:
		a.jobStatus = ""
		return tea.Batch(listen, a.setNotice("Generation failed: "+ev.Failed.ErrorMessage, true))
	}
	return listen
}

// collectionsForResult maps a completed job's result type to the lists
// it filled in.
func collectionsForResult(resultType string) []flow.Collection {
	switch resultType {
	case "content":
		return []flow.Collection{flow.Documents}
	case "summary":
		return []flow.Collection{flow.Summaries, flow.Documents}
	case "quiz":
		return []flow.Collection{flow.Quizzes}
	case "flashcard_deck", "deck":
		return []flow.Collection{flow.Decks}
	}
	return nil
}

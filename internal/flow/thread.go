package flow

import (
	"strings"
	"time"

	"lectura-cli/internal/models"
)

// FallbackReply is appended as an assistant message when a send fails;
// transport errors are folded into the conversation rather than
// surfaced as notifications.
const FallbackReply = "Sorry, I encountered an error. Please try again."

// Thread is an append-only conversation log with a pending-response
// state. Messages are never mutated or removed; ordering is insertion
// order.
type Thread struct {
	messages []models.ChatMessage
	awaiting bool
}

func (t *Thread) Messages() []models.ChatMessage { return t.messages }
func (t *Thread) Awaiting() bool                 { return t.awaiting }
func (t *Thread) Len() int                       { return len(t.messages) }

// Send appends the user message and enters the awaiting state. Blank
// messages and sends while a reply is pending are rejected.
func (t *Thread) Send(content string, now time.Time) bool {
	if t.awaiting || strings.TrimSpace(content) == "" {
		return false
	}
	t.messages = append(t.messages, models.ChatMessage{
		Role:      "user",
		Content:   content,
		Timestamp: now,
	})
	t.awaiting = true
	return true
}

// History returns the messages preceding the in-flight question, the
// context the chat endpoint expects.
func (t *Thread) History() []models.ChatMessage {
	if t.awaiting && len(t.messages) > 0 {
		return t.messages[:len(t.messages)-1]
	}
	return t.messages
}

// Receive appends the assistant reply and clears the awaiting state.
func (t *Thread) Receive(reply string, now time.Time) {
	if !t.awaiting {
		return
	}
	t.messages = append(t.messages, models.ChatMessage{
		Role:      "assistant",
		Content:   reply,
		Timestamp: now,
	})
	t.awaiting = false
}

// Fail swallows a transport failure into the conversation as a single
// fixed assistant apology. The preceding user message stays put and
// nothing is retried.
func (t *Thread) Fail(now time.Time) {
	t.Receive(FallbackReply, now)
}

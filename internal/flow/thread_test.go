package flow

import (
	"testing"
	"time"
)

func TestThread_SendAppendsUserMessage(t *testing.T) {
	var th Thread
	now := time.Now()

	if !th.Send("hi", now) {
		t.Fatal("send should succeed")
	}
	if th.Len() != 1 {
		t.Fatalf("expected 1 message, got %d", th.Len())
	}
	msg := th.Messages()[0]
	if msg.Role != "user" || msg.Content != "hi" {
		t.Errorf("unexpected message %+v", msg)
	}
	if !msg.Timestamp.Equal(now) {
		t.Error("user message should carry the client timestamp")
	}
	if !th.Awaiting() {
		t.Error("thread should be awaiting a reply")
	}
}

func TestThread_RejectsBlankAndConcurrentSends(t *testing.T) {
	var th Thread
	now := time.Now()

	if th.Send("   ", now) {
		t.Error("blank message should be rejected")
	}
	th.Send("first", now)
	if th.Send("second", now) {
		t.Error("send while awaiting should be rejected")
	}
	if th.Len() != 1 {
		t.Fatalf("expected 1 message, got %d", th.Len())
	}
}

func TestThread_ReceiveAppendsAssistantReply(t *testing.T) {
	var th Thread
	now := time.Now()
	th.Send("question", now)
	th.Receive("answer", now.Add(time.Second))

	if th.Len() != 2 {
		t.Fatalf("expected 2 messages, got %d", th.Len())
	}
	if th.Messages()[1].Role != "assistant" || th.Messages()[1].Content != "answer" {
		t.Errorf("unexpected reply %+v", th.Messages()[1])
	}
	if th.Awaiting() {
		t.Error("awaiting state should clear on receive")
	}
}

func TestThread_FailAppendsFallbackReply(t *testing.T) {
	var th Thread
	now := time.Now()
	th.Send("hi", now)
	th.Fail(now.Add(time.Second))

	if th.Len() != 2 {
		t.Fatalf("expected 2 messages, got %d", th.Len())
	}
	if th.Messages()[0].Role != "user" || th.Messages()[0].Content != "hi" {
		t.Error("user message must remain present after a failed send")
	}
	fallback := th.Messages()[1]
	if fallback.Role != "assistant" || fallback.Content != FallbackReply {
		t.Errorf("expected assistant fallback %q, got %+v", FallbackReply, fallback)
	}
	if th.Awaiting() {
		t.Error("awaiting state should clear on failure")
	}
}

func TestThread_HistoryExcludesPendingQuestion(t *testing.T) {
	var th Thread
	now := time.Now()
	th.Send("one", now)
	th.Receive("two", now)
	th.Send("three", now)

	hist := th.History()
	if len(hist) != 2 {
		t.Fatalf("expected history of 2, got %d", len(hist))
	}
	if hist[1].Content != "two" {
		t.Errorf("history should end before the pending question, got %q", hist[1].Content)
	}
}

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"` // "content-processing" | "summary-generation" | "quiz-generation" | "flashcard-generation"
	ReferenceID  uuid.UUID  `json:"reference_id"`
	Status       string     `json:"status"` // "pending" | "processing" | "completed" | "failed"
	ErrorMessage *string    `json:"error_message"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at"`
}

// WebSocket message types pushed by the backend while jobs run.
type WSMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type StatusUpdate struct {
	JobID                     uuid.UUID `json:"job_id"`
	Step                      int       `json:"step"`
	StepName                  string    `json:"step_name"`
	EstimatedSecondsRemaining int       `json:"estimated_seconds_remaining"`
}

type CompletedEvent struct {
	JobID      uuid.UUID `json:"job_id"`
	ResultID   uuid.UUID `json:"result_id"`
	ResultType string    `json:"result_type"`
}

type ErrorEvent struct {
	JobID        uuid.UUID `json:"job_id"`
	ErrorCode    string    `json:"error_code"`
	ErrorMessage string    `json:"error_message"`
}

// API error envelope
type APIError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}

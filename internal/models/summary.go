package models

import (
	"time"

	"github.com/google/uuid"
)

type Summary struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	ContentID      *uuid.UUID `json:"content_id"`
	Title          string     `json:"title"`
	Format         string     `json:"format"` // "cornell" | "bullets" | "paragraph"
	LengthSetting  string     `json:"length_setting"`
	ContentRaw     *string    `json:"content_raw"`
	CornellCues    *string    `json:"cornell_cues"`
	CornellNotes   *string    `json:"cornell_notes"`
	CornellSummary *string    `json:"cornell_summary"`
	Tags           []string   `json:"tags"`
	WordCount      int        `json:"word_count"`
	IsFavorite     bool       `json:"is_favorite"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Body flattens whichever representation the summary carries into
// displayable text.
func (s *Summary) Body() string {
	if s.ContentRaw != nil && *s.ContentRaw != "" {
		return *s.ContentRaw
	}
	var parts []string
	if s.CornellCues != nil && *s.CornellCues != "" {
		parts = append(parts, "CUES\n"+*s.CornellCues)
	}
	if s.CornellNotes != nil && *s.CornellNotes != "" {
		parts = append(parts, "NOTES\n"+*s.CornellNotes)
	}
	if s.CornellSummary != nil && *s.CornellSummary != "" {
		parts = append(parts, "SUMMARY\n"+*s.CornellSummary)
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "\n\n"
		}
		out += p
	}
	return out
}

type GenerateSummaryRequest struct {
	ContentID uuid.UUID `json:"content_id"`
	Format    string    `json:"format"`
	Length    string    `json:"length"`
	Language  string    `json:"language,omitempty"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportReason string

const (
	ReasonSpam          ReportReason = "spam"
	ReasonOffensive     ReportReason = "ofensivo"
	ReasonInappropriate ReportReason = "inapropiado"
	ReasonOther         ReportReason = "otro"
)

func ValidReason(r ReportReason) bool {
	switch r {
	case ReasonSpam, ReasonOffensive, ReasonInappropriate, ReasonOther:
		return true
	}
	return false
}

// Report is an append-only fact. At most one report exists per
// (suggestion, reporter); the store enforces this with a unique constraint.
type Report struct {
	ID           uuid.UUID    `json:"id"`
	SuggestionID uuid.UUID    `json:"suggestion_id"`
	ReporterID   uuid.UUID    `json:"reporter_id"`
	Reason       ReportReason `json:"reason"`
	CreatedAt    time.Time    `json:"created_at"`
}

// OpenReport joins a report with its suggestion and the people involved,
// for the admin triage listing.
type OpenReport struct {
	Report
	SuggestionTitle  string           `json:"suggestion_title"`
	SuggestionStatus SuggestionStatus `json:"suggestion_status"`
	AuthorName       string           `json:"author_name"`
	ReporterName     string           `json:"reporter_name"`
}

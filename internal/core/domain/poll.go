package domain

import (
	"time"

	"github.com/google/uuid"
)

type PollStatus string

const (
	PollStatusOpen   PollStatus = "open"
	PollStatusClosed PollStatus = "closed"
)

type Poll struct {
	ID               uuid.UUID    `json:"id"`
	Title            string       `json:"title"`
	Status           PollStatus   `json:"status"`
	ResultsPublished bool         `json:"results_published"`
	PublishedAt      *time.Time   `json:"published_at,omitempty"`
	CreatedBy        uuid.UUID    `json:"created_by"`
	CreatedAt        time.Time    `json:"created_at"`
	Options          []PollOption `json:"options"`
}

type PollOption struct {
	ID        uuid.UUID `json:"id"`
	PollID    uuid.UUID `json:"poll_id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// OptionTally is the derived result for a single option. Leading is only
// meaningful while the poll is open, Winner only once it is closed.
type OptionTally struct {
	OptionID   uuid.UUID `json:"option_id"`
	Label      string    `json:"label"`
	Votes      int64     `json:"votes"`
	Percentage float64   `json:"percentage"`
	Leading    bool      `json:"leading,omitempty"`
	Winner     bool      `json:"winner,omitempty"`
}

// PollTally is always computed from the stored votes, never cached on the
// poll. Winners and Leading are sets: a tie yields multiple entries.
type PollTally struct {
	PollID     uuid.UUID     `json:"poll_id"`
	Status     PollStatus    `json:"status"`
	TotalVotes int64         `json:"total_votes"`
	Options    []OptionTally `json:"options"`
	Leading    []uuid.UUID   `json:"leading,omitempty"`
	Winners    []uuid.UUID   `json:"winners,omitempty"`
}

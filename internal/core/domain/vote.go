package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote is an append-only fact. At most one vote exists per (poll, user);
// the store enforces this with a unique constraint.
type Vote struct {
	ID       uuid.UUID `json:"id"`
	PollID   uuid.UUID `json:"poll_id"`
	OptionID uuid.UUID `json:"option_id"`
	UserID   uuid.UUID `json:"user_id"`
	CastAt   time.Time `json:"cast_at"`
}

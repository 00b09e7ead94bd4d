package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mute is a time-bounded write restriction. Whether a user is currently
// muted is never stored as a flag; it is derived per read from the stored
// intervals, so natural expiry needs no write at all.
type Mute struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Reason      string    `json:"reason"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	LiftedEarly bool      `json:"lifted_early"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActiveAt reports whether the mute restricts the user at the given instant.
func (m Mute) ActiveAt(now time.Time) bool {
	return !m.LiftedEarly && !now.Before(m.StartAt) && now.Before(m.EndAt)
}

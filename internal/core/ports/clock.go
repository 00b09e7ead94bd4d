package ports

import "time"

// Clock supplies the current instant so time-based rules (mute expiry,
// publication timestamps) stay testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func NewSystemClock() Clock { return systemClock{} }

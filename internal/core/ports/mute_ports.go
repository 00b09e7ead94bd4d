package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
)

type MuteRepository interface {
	Save(ctx context.Context, mute *domain.Mute) error
	// HasActive reports whether any non-lifted mute interval covers now.
	HasActive(ctx context.Context, userID uuid.UUID, now time.Time) (bool, error)
	ListActive(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.Mute, error)
	// LiftActive marks every currently-effective mute as lifted early and
	// returns how many rows changed. Zero is not an error.
	LiftActive(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error)
}

type MuteUserInput struct {
	UserID  uuid.UUID
	Reason  string
	EndAt   time.Time
	MutedBy uuid.UUID
}

type MuteService interface {
	Mute(ctx context.Context, input MuteUserInput) (*domain.Mute, error)
	Lift(ctx context.Context, userID uuid.UUID) error
	IsMuted(ctx context.Context, userID uuid.UUID) (bool, error)
	Status(ctx context.Context, userID uuid.UUID) ([]*domain.Mute, error)
}

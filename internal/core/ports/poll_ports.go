package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
)

type PollRepository interface {
	Save(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Poll, error)
	Search(ctx context.Context, limit, offset int, query string) ([]*domain.Poll, error)
	// Close transitions open -> closed in a single compare-and-set statement.
	// Returns domain.ErrPollAlreadyClosed when the poll was closed already.
	Close(ctx context.Context, id uuid.UUID) error
	// Publish marks results as published while the poll is closed. A poll
	// that is already published is left untouched (publishedAt keeps its
	// original value) and no error is returned.
	Publish(ctx context.Context, id uuid.UUID, publishedAt time.Time) error
}

type CreatePollInput struct {
	Title     string
	Options   []string
	CreatedBy uuid.UUID
}

type ListPollsInput struct {
	Page  int
	Query string
}

type PollService interface {
	Create(ctx context.Context, input CreatePollInput) (*domain.Poll, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	List(ctx context.Context, input ListPollsInput) ([]*domain.Poll, error)
	Close(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	Publish(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	// Tally computes the derived results. Between close and publication the
	// numbers are only visible to admins.
	Tally(ctx context.Context, id uuid.UUID, viewer domain.Role) (*domain.PollTally, error)
}

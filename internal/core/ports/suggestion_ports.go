package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
)

type SuggestionFilter struct {
	Status   *domain.SuggestionStatus
	AuthorID *uuid.UUID
}

type SuggestionRepository interface {
	Save(ctx context.Context, s *domain.Suggestion) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Suggestion, error)
	List(ctx context.Context, limit, offset int, filter SuggestionFilter) ([]*domain.Suggestion, error)
	// Update writes the author-editable fields. The statement guards against
	// a concurrent archive; an archived row surfaces domain.ErrSuggestionArchived.
	Update(ctx context.Context, s *domain.Suggestion) error
	// Respond records an admin reply and status change in one compare-and-set
	// update that never touches archived rows.
	Respond(ctx context.Context, id uuid.UUID, reply string, status domain.SuggestionStatus, adminID uuid.UUID, at time.Time) error
}

type CreateSuggestionInput struct {
	Title    string
	Body     string
	Category domain.SuggestionCategory
	Contact  string
	AuthorID uuid.UUID
}

// SuggestionPatch carries only the fields the author wants to change.
// Nil means "leave as is".
type SuggestionPatch struct {
	Title    *string
	Body     *string
	Category *domain.SuggestionCategory
	Contact  *string
}

type RespondInput struct {
	SuggestionID uuid.UUID
	Reply        string
	NewStatus    domain.SuggestionStatus
	AdminID      uuid.UUID
}

type ListSuggestionsInput struct {
	Page   int
	Filter SuggestionFilter
}

type SuggestionService interface {
	Create(ctx context.Context, input CreateSuggestionInput) (*domain.Suggestion, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Suggestion, error)
	List(ctx context.Context, input ListSuggestionsInput) ([]*domain.Suggestion, error)
	Update(ctx context.Context, id uuid.UUID, patch SuggestionPatch, requesterID uuid.UUID) (*domain.Suggestion, error)
	Respond(ctx context.Context, input RespondInput) (*domain.Suggestion, error)
}

package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/ports"
)

const suggestionsPerPage = 10

type suggestionService struct {
	repo     ports.SuggestionRepository
	muteGate ports.MuteService
	clock    ports.Clock
}

func NewSuggestionService(repo ports.SuggestionRepository, muteGate ports.MuteService, clock ports.Clock) ports.SuggestionService {
	return &suggestionService{
		repo:     repo,
		muteGate: muteGate,
		clock:    clock,
	}
}

func (s *suggestionService) Create(ctx context.Context, input ports.CreateSuggestionInput) (*domain.Suggestion, error) {
	muted, err := s.muteGate.IsMuted(ctx, input.AuthorID)
	if err != nil {
		return nil, err
	}
	if muted {
		return nil, domain.ErrUserMuted
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, domain.ErrBodyRequired
	}
	if !domain.ValidCategory(input.Category) {
		return nil, domain.ErrInvalidCategory
	}

	now := s.clock.Now()
	suggestion := &domain.Suggestion{
		ID:        uuid.New(),
		Title:     title,
		Body:      body,
		Category:  input.Category,
		Contact:   strings.TrimSpace(input.Contact),
		AuthorID:  input.AuthorID,
		Status:    domain.SuggestionStatusPending,
		IsFlagged: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, suggestion); err != nil {
		return nil, err
	}

	return suggestion, nil
}

func (s *suggestionService) Get(ctx context.Context, id uuid.UUID) (*domain.Suggestion, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *suggestionService) List(ctx context.Context, input ports.ListSuggestionsInput) ([]*domain.Suggestion, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * suggestionsPerPage

	return s.repo.List(ctx, suggestionsPerPage, offset, input.Filter)
}

func (s *suggestionService) Update(ctx context.Context, id uuid.UUID, patch ports.SuggestionPatch, requesterID uuid.UUID) (*domain.Suggestion, error) {
	suggestion, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if suggestion.AuthorID != requesterID {
		return nil, domain.ErrNotAuthor
	}
	if suggestion.Status == domain.SuggestionStatusArchived {
		return nil, domain.ErrSuggestionArchived
	}

	muted, err := s.muteGate.IsMuted(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if muted {
		return nil, domain.ErrUserMuted
	}

	changed := false

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return nil, domain.ErrTitleRequired
		}
		if title != suggestion.Title {
			suggestion.Title = title
			changed = true
		}
	}
	if patch.Body != nil {
		body := strings.TrimSpace(*patch.Body)
		if body == "" {
			return nil, domain.ErrBodyRequired
		}
		if body != suggestion.Body {
			suggestion.Body = body
			changed = true
		}
	}
	if patch.Category != nil {
		if !domain.ValidCategory(*patch.Category) {
			return nil, domain.ErrInvalidCategory
		}
		if *patch.Category != suggestion.Category {
			suggestion.Category = *patch.Category
			changed = true
		}
	}
	if patch.Contact != nil {
		contact := strings.TrimSpace(*patch.Contact)
		if contact != suggestion.Contact {
			suggestion.Contact = contact
			changed = true
		}
	}

	// A patch where every field equals the stored value is rejected, not
	// silently accepted.
	if !changed {
		return nil, domain.ErrNoChanges
	}

	suggestion.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, suggestion); err != nil {
		return nil, err
	}

	return suggestion, nil
}

func (s *suggestionService) Respond(ctx context.Context, input ports.RespondInput) (*domain.Suggestion, error) {
	reply := strings.TrimSpace(input.Reply)
	if reply == "" {
		return nil, domain.ErrReplyRequired
	}
	if !domain.ValidResponseStatus(input.NewStatus) {
		return nil, domain.ErrInvalidStatus
	}

	if err := s.repo.Respond(ctx, input.SuggestionID, reply, input.NewStatus, input.AdminID, s.clock.Now()); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, input.SuggestionID)
}

package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/ports"
)

type muteService struct {
	muteRepo ports.MuteRepository
	userRepo ports.UserRepository
	clock    ports.Clock
}

func NewMuteService(muteRepo ports.MuteRepository, userRepo ports.UserRepository, clock ports.Clock) ports.MuteService {
	return &muteService{
		muteRepo: muteRepo,
		userRepo: userRepo,
		clock:    clock,
	}
}

func (s *muteService) Mute(ctx context.Context, input ports.MuteUserInput) (*domain.Mute, error) {
	target, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domain.ErrUserNotFound
	}
	if target.Role == domain.RoleSuperAdmin {
		return nil, domain.ErrProtectedAccount
	}

	now := s.clock.Now()
	if !input.EndAt.After(now) {
		return nil, domain.ErrInvalidMuteRange
	}

	mute := &domain.Mute{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Reason:    strings.TrimSpace(input.Reason),
		StartAt:   now,
		EndAt:     input.EndAt,
		CreatedBy: input.MutedBy,
		CreatedAt: now,
	}

	if err := s.muteRepo.Save(ctx, mute); err != nil {
		return nil, err
	}

	return mute, nil
}

// Lift marks every currently-effective mute as lifted early. Lifting a user
// with no effective mute is a no-op.
func (s *muteService) Lift(ctx context.Context, userID uuid.UUID) error {
	_, err := s.muteRepo.LiftActive(ctx, userID, s.clock.Now())
	return err
}

// IsMuted derives the restriction from the stored intervals and the current
// time. An expired mute needs no write to stop applying.
func (s *muteService) IsMuted(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.muteRepo.HasActive(ctx, userID, s.clock.Now())
}

func (s *muteService) Status(ctx context.Context, userID uuid.UUID) ([]*domain.Mute, error) {
	return s.muteRepo.ListActive(ctx, userID, s.clock.Now())
}

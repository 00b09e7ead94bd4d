package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/ports"
)

type voteService struct {
	pollRepo ports.PollRepository
	voteRepo ports.VoteRepository
	clock    ports.Clock
}

func NewVoteService(pollRepo ports.PollRepository, voteRepo ports.VoteRepository, clock ports.Clock) ports.VoteService {
	return &voteService{
		pollRepo: pollRepo,
		voteRepo: voteRepo,
		clock:    clock,
	}
}

func (s *voteService) Cast(ctx context.Context, input ports.CastVoteInput) (*domain.Vote, error) {
	poll, err := s.pollRepo.GetByID(ctx, input.PollID)
	if err != nil {
		return nil, err
	}

	if poll.Status == domain.PollStatusClosed {
		return nil, domain.ErrPollClosed
	}

	validOption := false
	for _, opt := range poll.Options {
		if opt.ID == input.OptionID {
			validOption = true
			break
		}
	}
	if !validOption {
		return nil, domain.ErrOptionNotFound
	}

	vote := &domain.Vote{
		ID:       uuid.New(),
		PollID:   input.PollID,
		OptionID: input.OptionID,
		UserID:   input.VoterID,
		CastAt:   s.clock.Now(),
	}

	// Duplicate detection happens at the store's unique constraint, not
	// here: a read-then-write would race under concurrent requests.
	if err := s.voteRepo.Save(ctx, vote); err != nil {
		return nil, err
	}

	return vote, nil
}

func (s *voteService) GetUserVote(ctx context.Context, pollID, userID uuid.UUID) (*domain.Vote, error) {
	return s.voteRepo.GetByPollAndUser(ctx, pollID, userID)
}

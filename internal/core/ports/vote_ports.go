package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
)

type VoteRepository interface {
	// Save inserts the vote, relying on the store's unique constraint on
	// (poll_id, user_id). A duplicate surfaces as domain.ErrAlreadyVoted.
	Save(ctx context.Context, vote *domain.Vote) error
	CountByOption(ctx context.Context, pollID uuid.UUID) (map[uuid.UUID]int64, error)
	GetByPollAndUser(ctx context.Context, pollID, userID uuid.UUID) (*domain.Vote, error)
}

type CastVoteInput struct {
	PollID   uuid.UUID
	OptionID uuid.UUID
	VoterID  uuid.UUID
}

type VoteService interface {
	Cast(ctx context.Context, input CastVoteInput) (*domain.Vote, error)
	GetUserVote(ctx context.Context, pollID, userID uuid.UUID) (*domain.Vote, error)
}

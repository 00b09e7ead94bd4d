package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/ports"
)

const pollsPerPage = 10

const maxPollOptions = 10

type pollService struct {
	pollRepo ports.PollRepository
	voteRepo ports.VoteRepository
	clock    ports.Clock
}

func NewPollService(pollRepo ports.PollRepository, voteRepo ports.VoteRepository, clock ports.Clock) ports.PollService {
	return &pollService{
		pollRepo: pollRepo,
		voteRepo: voteRepo,
		clock:    clock,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	pollID := uuid.New()
	now := s.clock.Now()

	poll := &domain.Poll{
		ID:               pollID,
		Title:            title,
		Status:           domain.PollStatusOpen,
		ResultsPublished: false,
		CreatedBy:        input.CreatedBy,
		CreatedAt:        now,
	}

	for _, label := range input.Options {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		poll.Options = append(poll.Options, domain.PollOption{
			ID:        uuid.New(),
			PollID:    pollID,
			Label:     label,
			CreatedAt: now,
		})
	}

	if len(poll.Options) < 2 {
		return nil, domain.ErrNotEnoughOptions
	}
	if len(poll.Options) > maxPollOptions {
		return nil, domain.ErrTooManyOptions
	}

	if err := s.pollRepo.Save(ctx, poll); err != nil {
		return nil, err
	}

	return poll, nil
}

func (s *pollService) Get(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	return s.pollRepo.GetByID(ctx, id)
}

func (s *pollService) List(ctx context.Context, input ports.ListPollsInput) ([]*domain.Poll, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pollsPerPage

	if input.Query != "" {
		return s.pollRepo.Search(ctx, pollsPerPage, offset, input.Query)
	}
	return s.pollRepo.List(ctx, pollsPerPage, offset)
}

func (s *pollService) Close(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	if err := s.pollRepo.Close(ctx, id); err != nil {
		return nil, err
	}
	return s.pollRepo.GetByID(ctx, id)
}

func (s *pollService) Publish(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	poll, err := s.pollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if poll.Status != domain.PollStatusClosed {
		return nil, domain.ErrPollNotClosed
	}

	// Re-publish is a no-op: publishedAt keeps its original value.
	if poll.ResultsPublished {
		return poll, nil
	}

	if err := s.pollRepo.Publish(ctx, id, s.clock.Now()); err != nil {
		return nil, err
	}
	return s.pollRepo.GetByID(ctx, id)
}

func (s *pollService) Tally(ctx context.Context, id uuid.UUID, viewer domain.Role) (*domain.PollTally, error) {
	poll, err := s.pollRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Between close and publication, results are admin-only.
	if poll.Status == domain.PollStatusClosed && !poll.ResultsPublished && !viewer.IsAdmin() {
		return nil, domain.ErrResultsNotPublished
	}

	counts, err := s.voteRepo.CountByOption(ctx, poll.ID)
	if err != nil {
		return nil, err
	}

	return buildTally(poll, counts), nil
}

// buildTally derives counts, percentages and the leading/winner sets from
// the stored votes. Ties are kept as-is: every option at the maximum is
// part of the set, nothing picks an arbitrary single winner.
func buildTally(poll *domain.Poll, counts map[uuid.UUID]int64) *domain.PollTally {
	tally := &domain.PollTally{
		PollID:  poll.ID,
		Status:  poll.Status,
		Options: make([]domain.OptionTally, 0, len(poll.Options)),
	}

	var maxVotes int64
	for _, opt := range poll.Options {
		votes := counts[opt.ID]
		tally.TotalVotes += votes
		if votes > maxVotes {
			maxVotes = votes
		}
	}

	for _, opt := range poll.Options {
		votes := counts[opt.ID]
		entry := domain.OptionTally{
			OptionID: opt.ID,
			Label:    opt.Label,
			Votes:    votes,
		}
		if tally.TotalVotes > 0 {
			entry.Percentage = float64(votes) / float64(tally.TotalVotes) * 100
		}

		if maxVotes > 0 && votes == maxVotes {
			if poll.Status == domain.PollStatusOpen {
				entry.Leading = true
				tally.Leading = append(tally.Leading, opt.ID)
			} else {
				entry.Winner = true
				tally.Winners = append(tally.Winners, opt.ID)
			}
		}

		tally.Options = append(tally.Options, entry)
	}

	return tally
}

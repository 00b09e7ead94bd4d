package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/ports"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakePollRepo struct {
	mu    sync.Mutex
	polls map[uuid.UUID]*domain.Poll
}

func newFakePollRepo() *fakePollRepo {
	return &fakePollRepo{polls: make(map[uuid.UUID]*domain.Poll)}
}

func (r *fakePollRepo) Save(_ context.Context, poll *domain.Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *poll
	r.polls[poll.ID] = &stored
	return nil
}

func (r *fakePollRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	poll := *stored
	return &poll, nil
}

func (r *fakePollRepo) List(_ context.Context, limit, offset int) ([]*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var polls []*domain.Poll
	for _, p := range r.polls {
		poll := *p
		polls = append(polls, &poll)
	}
	sort.Slice(polls, func(i, j int) bool { return polls[i].CreatedAt.After(polls[j].CreatedAt) })
	if offset >= len(polls) {
		return nil, nil
	}
	polls = polls[offset:]
	if len(polls) > limit {
		polls = polls[:limit]
	}
	return polls, nil
}

func (r *fakePollRepo) Search(ctx context.Context, limit, offset int, _ string) ([]*domain.Poll, error) {
	return r.List(ctx, limit, offset)
}

func (r *fakePollRepo) Close(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	poll, ok := r.polls[id]
	if !ok {
		return domain.ErrPollNotFound
	}
	if poll.Status == domain.PollStatusClosed {
		return domain.ErrPollAlreadyClosed
	}
	poll.Status = domain.PollStatusClosed
	return nil
}

func (r *fakePollRepo) Publish(_ context.Context, id uuid.UUID, publishedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	poll, ok := r.polls[id]
	if !ok {
		return domain.ErrPollNotFound
	}
	if poll.Status == domain.PollStatusClosed && !poll.ResultsPublished {
		poll.ResultsPublished = true
		at := publishedAt
		poll.PublishedAt = &at
	}
	return nil
}

type fakeVoteRepo struct {
	mu    sync.Mutex
	votes map[uuid.UUID]map[uuid.UUID]*domain.Vote // pollID -> userID -> vote
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[uuid.UUID]map[uuid.UUID]*domain.Vote)}
}

func (r *fakeVoteRepo) Save(_ context.Context, vote *domain.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	byUser, ok := r.votes[vote.PollID]
	if !ok {
		byUser = make(map[uuid.UUID]*domain.Vote)
		r.votes[vote.PollID] = byUser
	}
	if _, exists := byUser[vote.UserID]; exists {
		return domain.ErrAlreadyVoted
	}
	stored := *vote
	byUser[vote.UserID] = &stored
	return nil
}

func (r *fakeVoteRepo) CountByOption(_ context.Context, pollID uuid.UUID) (map[uuid.UUID]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[uuid.UUID]int64)
	for _, v := range r.votes[pollID] {
		counts[v.OptionID]++
	}
	return counts, nil
}

func (r *fakeVoteRepo) GetByPollAndUser(_ context.Context, pollID, userID uuid.UUID) (*domain.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.votes[pollID][userID]
	if !ok {
		return nil, domain.ErrVoteNotFound
	}
	vote := *stored
	return &vote, nil
}

func (r *fakeVoteRepo) totalVotes(pollID uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.votes[pollID])
}

type fakeSuggestionRepo struct {
	mu          sync.Mutex
	suggestions map[uuid.UUID]*domain.Suggestion
}

func newFakeSuggestionRepo() *fakeSuggestionRepo {
	return &fakeSuggestionRepo{suggestions: make(map[uuid.UUID]*domain.Suggestion)}
}

func (r *fakeSuggestionRepo) Save(_ context.Context, s *domain.Suggestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *s
	r.suggestions[s.ID] = &stored
	return nil
}

func (r *fakeSuggestionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Suggestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.suggestions[id]
	if !ok {
		return nil, domain.ErrSuggestionNotFound
	}
	s := *stored
	return &s, nil
}

func (r *fakeSuggestionRepo) List(_ context.Context, limit, offset int, filter ports.SuggestionFilter) ([]*domain.Suggestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Suggestion
	for _, stored := range r.suggestions {
		if filter.Status != nil && stored.Status != *filter.Status {
			continue
		}
		if filter.AuthorID != nil && stored.AuthorID != *filter.AuthorID {
			continue
		}
		s := *stored
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSuggestionRepo) Update(_ context.Context, s *domain.Suggestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.suggestions[s.ID]
	if !ok {
		return domain.ErrSuggestionNotFound
	}
	if stored.Status == domain.SuggestionStatusArchived {
		return domain.ErrSuggestionArchived
	}
	stored.Title = s.Title
	stored.Body = s.Body
	stored.Category = s.Category
	stored.Contact = s.Contact
	stored.UpdatedAt = s.UpdatedAt
	return nil
}

func (r *fakeSuggestionRepo) Respond(_ context.Context, id uuid.UUID, reply string, status domain.SuggestionStatus, adminID uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.suggestions[id]
	if !ok {
		return domain.ErrSuggestionNotFound
	}
	if stored.Status == domain.SuggestionStatusArchived {
		return domain.ErrSuggestionArchived
	}
	stored.AdminReply = &reply
	repliedAt := at
	stored.RepliedAt = &repliedAt
	admin := adminID
	stored.RespondedBy = &admin
	stored.Status = status
	stored.UpdatedAt = at
	return nil
}

func (r *fakeSuggestionRepo) setFlag(id uuid.UUID, flagged bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.suggestions[id]; ok {
		stored.IsFlagged = flagged
	}
}

type fakeReportRepo struct {
	mu          sync.Mutex
	reports     map[uuid.UUID]*domain.Report
	suggestions *fakeSuggestionRepo
}

func newFakeReportRepo(suggestions *fakeSuggestionRepo) *fakeReportRepo {
	return &fakeReportRepo{
		reports:     make(map[uuid.UUID]*domain.Report),
		suggestions: suggestions,
	}
}

func (r *fakeReportRepo) Save(_ context.Context, report *domain.Report) error {
	r.mu.Lock()
	for _, existing := range r.reports {
		if existing.SuggestionID == report.SuggestionID && existing.ReporterID == report.ReporterID {
			r.mu.Unlock()
			return domain.ErrAlreadyReported
		}
	}
	stored := *report
	r.reports[report.ID] = &stored
	r.mu.Unlock()

	r.refreshFlag(report.SuggestionID)
	return nil
}

func (r *fakeReportRepo) Delete(_ context.Context, reportID uuid.UUID) error {
	r.mu.Lock()
	report, ok := r.reports[reportID]
	if !ok {
		r.mu.Unlock()
		return domain.ErrReportNotFound
	}
	suggestionID := report.SuggestionID
	delete(r.reports, reportID)
	r.mu.Unlock()

	r.refreshFlag(suggestionID)
	return nil
}

func (r *fakeReportRepo) DeleteBySuggestion(_ context.Context, suggestionID uuid.UUID) (int64, error) {
	r.mu.Lock()
	var deleted int64
	for id, report := range r.reports {
		if report.SuggestionID == suggestionID {
			delete(r.reports, id)
			deleted++
		}
	}
	r.mu.Unlock()

	r.refreshFlag(suggestionID)
	return deleted, nil
}

func (r *fakeReportRepo) ListOpen(_ context.Context, limit, offset int) ([]*domain.OpenReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.OpenReport
	for _, stored := range r.reports {
		out = append(out, &domain.OpenReport{Report: *stored})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeReportRepo) refreshFlag(suggestionID uuid.UUID) {
	r.mu.Lock()
	var count int
	for _, report := range r.reports {
		if report.SuggestionID == suggestionID {
			count++
		}
	}
	r.mu.Unlock()
	r.suggestions.setFlag(suggestionID, count > 0)
}

type fakeMuteRepo struct {
	mu    sync.Mutex
	mutes []*domain.Mute
}

func newFakeMuteRepo() *fakeMuteRepo {
	return &fakeMuteRepo{}
}

func (r *fakeMuteRepo) Save(_ context.Context, mute *domain.Mute) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *mute
	r.mutes = append(r.mutes, &stored)
	return nil
}

func (r *fakeMuteRepo) HasActive(_ context.Context, userID uuid.UUID, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.mutes {
		if m.UserID == userID && m.ActiveAt(now) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMuteRepo) ListActive(_ context.Context, userID uuid.UUID, now time.Time) ([]*domain.Mute, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Mute
	for _, stored := range r.mutes {
		if stored.UserID == userID && stored.ActiveAt(now) {
			m := *stored
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *fakeMuteRepo) LiftActive(_ context.Context, userID uuid.UUID, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var lifted int64
	for _, m := range r.mutes {
		if m.UserID == userID && m.ActiveAt(now) {
			m.LiftedEarly = true
			lifted++
		}
	}
	return lifted, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) add(role domain.Role) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New()
	r.users[id] = &domain.User{ID: id, Email: id.String() + "@example.com", Name: "User", Role: role}
	return id
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			user := *u
			return &user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	user := *stored
	return &user, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

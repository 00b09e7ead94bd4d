package domain

import "errors"

// Validation failures. The caller can fix the request and resubmit.
var (
	ErrTitleRequired    = errors.New("title is required")
	ErrBodyRequired     = errors.New("body is required")
	ErrReplyRequired    = errors.New("reply is required")
	ErrNotEnoughOptions = errors.New("at least two non-empty options are required")
	ErrTooManyOptions   = errors.New("at most ten options are allowed")
	ErrInvalidCategory  = errors.New("invalid suggestion category")
	ErrInvalidReason    = errors.New("invalid report reason")
	ErrInvalidStatus    = errors.New("invalid suggestion status")
	ErrInvalidMuteRange = errors.New("mute end must be in the future")
)

// Missing entities.
var (
	ErrPollNotFound       = errors.New("poll not found")
	ErrOptionNotFound     = errors.New("option not found for this poll")
	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrVoteNotFound       = errors.New("user did not vote on this poll")
)

// Conflicts with current state. Retrying the same request will not help.
var (
	ErrAlreadyVoted      = errors.New("user has already voted on this poll")
	ErrPollClosed        = errors.New("poll is closed for voting")
	ErrPollAlreadyClosed = errors.New("poll is already closed")
	ErrPollNotClosed     = errors.New("results can only be published once the poll is closed")
	ErrAlreadyReported   = errors.New("user has already reported this suggestion")
	ErrSelfReport        = errors.New("users cannot report their own suggestion")
	ErrNoChanges         = errors.New("no changes to apply")
)

// Forbidden actions for the acting user.
var (
	ErrUserMuted           = errors.New("user is muted and cannot perform this action")
	ErrSuggestionArchived  = errors.New("suggestion is archived")
	ErrNotAuthor           = errors.New("only the author can edit this suggestion")
	ErrProtectedAccount    = errors.New("this account cannot be muted")
	ErrResultsNotPublished = errors.New("results have not been published yet")
)

var ErrInternal = errors.New("internal server error")

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

var statusByError = []struct {
	errs   []error
	status int
}{
	{
		errs: []error{
			domain.ErrTitleRequired, domain.ErrBodyRequired, domain.ErrReplyRequired,
			domain.ErrNotEnoughOptions, domain.ErrTooManyOptions,
			domain.ErrInvalidCategory, domain.ErrInvalidReason, domain.ErrInvalidStatus,
			domain.ErrInvalidMuteRange,
		},
		status: http.StatusBadRequest,
	},
	{
		errs: []error{
			domain.ErrPollNotFound, domain.ErrOptionNotFound, domain.ErrSuggestionNotFound,
			domain.ErrReportNotFound, domain.ErrUserNotFound, domain.ErrVoteNotFound,
		},
		status: http.StatusNotFound,
	},
	{
		errs: []error{
			domain.ErrAlreadyVoted, domain.ErrPollClosed, domain.ErrPollAlreadyClosed,
			domain.ErrPollNotClosed, domain.ErrAlreadyReported, domain.ErrSelfReport,
			domain.ErrNoChanges,
		},
		status: http.StatusConflict,
	},
	{
		errs: []error{
			domain.ErrUserMuted, domain.ErrSuggestionArchived, domain.ErrNotAuthor,
			domain.ErrProtectedAccount, domain.ErrResultsNotPublished,
		},
		status: http.StatusForbidden,
	},
}

// writeError maps the engine's sentinel errors onto HTTP statuses. Anything
// unrecognized is treated as transient and reported as a 500.
func writeError(w http.ResponseWriter, err error) {
	for _, group := range statusByError {
		for _, sentinel := range group.errs {
			if errors.Is(err, sentinel) {
				http.Error(w, sentinel.Error(), group.status)
				return
			}
		}
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

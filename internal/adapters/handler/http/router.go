package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handlers struct {
	Poll       *PollHandler
	Vote       *VoteHandler
	Suggestion *SuggestionHandler
	Report     *ReportHandler
	Mute       *MuteHandler
	User       *UserHandler
}

func NewHandler(h Handlers, jwtSecret []byte) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(AuthMiddleware(jwtSecret))

		r.Route("/polls", func(r chi.Router) {
			r.Get("/", h.Poll.ListPolls)
			r.Get("/{id}", h.Poll.GetPoll)
			r.Get("/{id}/results", h.Poll.GetResults)
			r.Post("/{id}/votes", h.Vote.VoteOnPoll)
			r.Get("/{id}/my-vote", h.Vote.GetMyVote)

			r.Group(func(r chi.Router) {
				r.Use(RequireAdmin)
				r.Post("/", h.Poll.CreatePoll)
				r.Post("/{id}/close", h.Poll.ClosePoll)
				r.Post("/{id}/publish", h.Poll.PublishResults)
			})
		})

		r.Route("/suggestions", func(r chi.Router) {
			r.Post("/", h.Suggestion.CreateSuggestion)
			r.Get("/", h.Suggestion.ListSuggestions)
			r.Get("/{id}", h.Suggestion.GetSuggestion)
			r.Patch("/{id}", h.Suggestion.UpdateSuggestion)
			r.Post("/{id}/reports", h.Report.ReportSuggestion)

			r.Group(func(r chi.Router) {
				r.Use(RequireAdmin)
				r.Post("/{id}/response", h.Suggestion.RespondToSuggestion)
				r.Delete("/{id}/reports", h.Report.ClearAllReports)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(RequireAdmin)
			r.Get("/", h.Report.ListOpenReports)
			r.Delete("/{id}", h.Report.DismissReport)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", h.User.GetMe)
			r.Get("/me/mute", h.Mute.GetMyMuteStatus)

			r.Group(func(r chi.Router) {
				r.Use(RequireAdmin)
				r.Get("/{id}/mutes", h.Mute.GetUserMuteStatus)
				r.Post("/{id}/mutes", h.Mute.MuteUser)
				r.Delete("/{id}/mutes", h.Mute.LiftMute)
			})
		})
	})

	return r
}

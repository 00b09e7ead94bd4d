package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{
		service: service,
	}
}

type createPollRequest struct {
	Title   string   `json:"title"`
	Options []string `json:"options"`
}

func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, _, ok := identityFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	poll, err := h.service.Create(r.Context(), ports.CreatePollInput{
		Title:     req.Title,
		Options:   req.Options,
		CreatedBy: userID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, poll)
}

func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	poll, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, poll)
}

func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	polls, err := h.service.List(r.Context(), ports.ListPollsInput{
		Page:  page,
		Query: r.URL.Query().Get("q"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, polls)
}

func (h *PollHandler) ClosePoll(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	poll, err := h.service.Close(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, poll)
}

func (h *PollHandler) PublishResults(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	poll, err := h.service.Publish(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, poll)
}

func (h *PollHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	_, role, ok := identityFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	tally, err := h.service.Tally(r.Context(), id, role)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tally)
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/ports"
)

type SuggestionHandler struct {
	service ports.SuggestionService
}

func NewSuggestionHandler(service ports.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{
		service: service,
	}
}

type createSuggestionRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
	Contact  string `json:"contact"`
}

func (h *SuggestionHandler) CreateSuggestion(w http.ResponseWriter, r *http.Request) {
	var req createSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, _, ok := identityFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	suggestion, err := h.service.Create(r.Context(), ports.CreateSuggestionInput{
		Title:    req.Title,
		Body:     req.Body,
		Category: domain.SuggestionCategory(req.Category),
		Contact:  req.Contact,
		AuthorID: userID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, suggestion)
}

func (h *SuggestionHandler) GetSuggestion(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid suggestion id", http.StatusBadRequest)
		return
	}

	suggestion, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, suggestion)
}

// ListSuggestions returns the caller's own suggestions; admins see
// everyone's and can filter by status or author.
func (h *SuggestionHandler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := identityFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	filter := ports.SuggestionFilter{}

	if role.IsAdmin() {
		if s := r.URL.Query().Get("status"); s != "" {
			status := domain.SuggestionStatus(s)
			filter.Status = &status
		}
		if a := r.URL.Query().Get("author"); a != "" {
			authorID, err := uuid.Parse(a)
			if err != nil {
				http.Error(w, "invalid author id", http.StatusBadRequest)
				return
			}
			filter.AuthorID = &authorID
		}
	} else {
		filter.AuthorID = &userID
	}

	suggestions, err := h.service.List(r.Context(), ports.ListSuggestionsInput{
		Page:   page,
		Filter: filter,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, suggestions)
}

type updateSuggestionRequest struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	Category *string `json:"category"`
	Contact  *string `json:"contact"`
}

func (h *SuggestionHandler) UpdateSuggestion(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid suggestion id", http.StatusBadRequest)
		return
	}

	var req updateSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, _, ok := identityFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	patch := ports.SuggestionPatch{
		Title:   req.Title,
		Body:    req.Body,
		Contact: req.Contact,
	}
	if req.Category != nil {
		category := domain.SuggestionCategory(*req.Category)
		patch.Category = &category
	}

	suggestion, err := h.service.Update(r.Context(), id, patch, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, suggestion)
}

type respondRequest struct {
	Reply  string `json:"reply"`
	Status string `json:"status"`
}

func (h *SuggestionHandler) RespondToSuggestion(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid suggestion id", http.StatusBadRequest)
		return
	}

	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	adminID, _, ok := identityFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	suggestion, err := h.service.Respond(r.Context(), ports.RespondInput{
		SuggestionID: id,
		Reply:        req.Reply,
		NewStatus:    domain.SuggestionStatus(req.Status),
		AdminID:      adminID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, suggestion)
}

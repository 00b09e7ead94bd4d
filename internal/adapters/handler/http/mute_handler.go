package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/ports"
)

type MuteHandler struct {
	service ports.MuteService
}

func NewMuteHandler(service ports.MuteService) *MuteHandler {
	return &MuteHandler{
		service: service,
	}
}

type muteRequest struct {
	Reason string    `json:"reason"`
	EndAt  time.Time `json:"end_at"`
}

func (h *MuteHandler) MuteUser(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var req muteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	adminID, _, ok := identityFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	mute, err := h.service.Mute(r.Context(), ports.MuteUserInput{
		UserID:  targetID,
		Reason:  req.Reason,
		EndAt:   req.EndAt,
		MutedBy: adminID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, mute)
}

func (h *MuteHandler) LiftMute(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.service.Lift(r.Context(), targetID); err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "lifted"})
}

// GetMyMuteStatus lets a student see whether (and until when) they are
// restricted from writing.
func (h *MuteHandler) GetMyMuteStatus(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := identityFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	mutes, err := h.service.Status(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"muted": len(mutes) > 0,
		"mutes": mutes,
	})
}

func (h *MuteHandler) GetUserMuteStatus(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	mutes, err := h.service.Status(r.Context(), targetID)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"muted": len(mutes) > 0,
		"mutes": mutes,
	})
}

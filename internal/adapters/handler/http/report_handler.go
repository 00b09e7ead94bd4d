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

type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

type reportRequest struct {
	Reason string `json:"reason"`
}

func (h *ReportHandler) ReportSuggestion(w http.ResponseWriter, r *http.Request) {
	suggestionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid suggestion id", http.StatusBadRequest)
		return
	}

	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, _, ok := identityFromContext(r)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	report, err := h.service.Report(r.Context(), ports.ReportSuggestionInput{
		SuggestionID: suggestionID,
		ReporterID:   userID,
		Reason:       domain.ReportReason(req.Reason),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, report)
}

func (h *ReportHandler) ListOpenReports(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	reports, err := h.service.ListOpen(r.Context(), page)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) DismissReport(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid report id", http.StatusBadRequest)
		return
	}

	if err := h.service.Dismiss(r.Context(), reportID); err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "dismissed"})
}

func (h *ReportHandler) ClearAllReports(w http.ResponseWriter, r *http.Request) {
	suggestionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid suggestion id", http.StatusBadRequest)
		return
	}

	cleared, err := h.service.ClearAll(r.Context(), suggestionID)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"cleared": cleared})
}

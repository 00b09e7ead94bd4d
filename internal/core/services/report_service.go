package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/ports"
)

const reportsPerPage = 10

type reportService struct {
	reportRepo     ports.ReportRepository
	suggestionRepo ports.SuggestionRepository
	clock          ports.Clock
}

func NewReportService(reportRepo ports.ReportRepository, suggestionRepo ports.SuggestionRepository, clock ports.Clock) ports.ReportService {
	return &reportService{
		reportRepo:     reportRepo,
		suggestionRepo: suggestionRepo,
		clock:          clock,
	}
}

func (s *reportService) Report(ctx context.Context, input ports.ReportSuggestionInput) (*domain.Report, error) {
	if !domain.ValidReason(input.Reason) {
		return nil, domain.ErrInvalidReason
	}

	suggestion, err := s.suggestionRepo.GetByID(ctx, input.SuggestionID)
	if err != nil {
		return nil, err
	}
	if suggestion.Status == domain.SuggestionStatusArchived {
		return nil, domain.ErrSuggestionArchived
	}
	if suggestion.AuthorID == input.ReporterID {
		return nil, domain.ErrSelfReport
	}

	report := &domain.Report{
		ID:           uuid.New(),
		SuggestionID: input.SuggestionID,
		ReporterID:   input.ReporterID,
		Reason:       input.Reason,
		CreatedAt:    s.clock.Now(),
	}

	// The store inserts and recomputes the flag atomically; a duplicate
	// (suggestion, reporter) pair comes back as ErrAlreadyReported.
	if err := s.reportRepo.Save(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *reportService) ListOpen(ctx context.Context, page int) ([]*domain.OpenReport, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * reportsPerPage

	return s.reportRepo.ListOpen(ctx, reportsPerPage, offset)
}

func (s *reportService) Dismiss(ctx context.Context, reportID uuid.UUID) error {
	return s.reportRepo.Delete(ctx, reportID)
}

func (s *reportService) ClearAll(ctx context.Context, suggestionID uuid.UUID) (int64, error) {
	if _, err := s.suggestionRepo.GetByID(ctx, suggestionID); err != nil {
		return 0, err
	}
	return s.reportRepo.DeleteBySuggestion(ctx, suggestionID)
}

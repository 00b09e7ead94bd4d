package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
)

type ReportRepository interface {
	// Save inserts the report and recomputes the suggestion's flagged state
	// in the same transaction. A duplicate (suggestion, reporter) pair
	// surfaces as domain.ErrAlreadyReported.
	Save(ctx context.Context, report *domain.Report) error
	// Delete removes one report and recomputes the flagged state of the
	// suggestion it pointed at, in the same transaction.
	Delete(ctx context.Context, reportID uuid.UUID) error
	// DeleteBySuggestion removes every report for the suggestion and clears
	// its flag. Returns the number of reports removed.
	DeleteBySuggestion(ctx context.Context, suggestionID uuid.UUID) (int64, error)
	ListOpen(ctx context.Context, limit, offset int) ([]*domain.OpenReport, error)
}

type ReportSuggestionInput struct {
	SuggestionID uuid.UUID
	ReporterID   uuid.UUID
	Reason       domain.ReportReason
}

type ReportService interface {
	Report(ctx context.Context, input ReportSuggestionInput) (*domain.Report, error)
	ListOpen(ctx context.Context, page int) ([]*domain.OpenReport, error)
	Dismiss(ctx context.Context, reportID uuid.UUID) error
	ClearAll(ctx context.Context, suggestionID uuid.UUID) (int64, error)
}

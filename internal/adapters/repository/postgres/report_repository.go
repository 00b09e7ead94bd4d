package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/ports"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) ports.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// Save inserts the report and refreshes the suggestion's flag in one
// transaction. The reports_one_per_reporter constraint makes the duplicate
// check atomic with the insert.
func (r *reportRepository) Save(ctx context.Context, report *domain.Report) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO reports (id, suggestion_id, reporter_id, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.ExecContext(ctx, query, report.ID, report.SuggestionID, report.ReporterID, report.Reason, report.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == "reports_one_per_reporter" {
			return domain.ErrAlreadyReported
		}
		return fmt.Errorf("failed to save report: %w", err)
	}

	if err := refreshFlag(ctx, tx, report.SuggestionID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *reportRepository) Delete(ctx context.Context, reportID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var suggestionID uuid.UUID
	err = tx.QueryRowContext(ctx, `DELETE FROM reports WHERE id = $1 RETURNING suggestion_id`, reportID).Scan(&suggestionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReportNotFound
		}
		return fmt.Errorf("failed to delete report: %w", err)
	}

	if err := refreshFlag(ctx, tx, suggestionID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *reportRepository) DeleteBySuggestion(ctx context.Context, suggestionID uuid.UUID) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM reports WHERE suggestion_id = $1`, suggestionID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear reports: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read clear result: %w", err)
	}

	if err := refreshFlag(ctx, tx, suggestionID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return deleted, nil
}

func (r *reportRepository) ListOpen(ctx context.Context, limit, offset int) ([]*domain.OpenReport, error) {
	query := `
		SELECT r.id, r.suggestion_id, r.reporter_id, r.reason, r.created_at,
		       s.title, s.status, a.name, rep.name
		FROM reports r
		JOIN suggestions s ON s.id = r.suggestion_id
		JOIN users a ON a.id = s.author_id
		JOIN users rep ON rep.id = r.reporter_id
		ORDER BY r.created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*domain.OpenReport
	for rows.Next() {
		var report domain.OpenReport
		if err := rows.Scan(
			&report.ID, &report.SuggestionID, &report.ReporterID, &report.Reason, &report.CreatedAt,
			&report.SuggestionTitle, &report.SuggestionStatus, &report.AuthorName, &report.ReporterName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, &report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}
	return reports, nil
}

// refreshFlag recomputes is_flagged from the remaining reports, keeping the
// derived flag and the report rows consistent within the caller's transaction.
func refreshFlag(ctx context.Context, tx *sql.Tx, suggestionID uuid.UUID) error {
	query := `
		UPDATE suggestions
		SET is_flagged = EXISTS (SELECT 1 FROM reports WHERE suggestion_id = $1)
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, query, suggestionID); err != nil {
		return fmt.Errorf("failed to refresh flagged state: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/ports"
)

type suggestionRepository struct {
	db *sql.DB
}

func NewSuggestionRepository(db *sql.DB) ports.SuggestionRepository {
	return &suggestionRepository{
		db: db,
	}
}

func (r *suggestionRepository) Save(ctx context.Context, s *domain.Suggestion) error {
	query := `
		INSERT INTO suggestions (id, title, body, category, contact, author_id, status, is_flagged, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Title, s.Body, s.Category, s.Contact, s.AuthorID, s.Status, s.IsFlagged, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save suggestion: %w", err)
	}
	return nil
}

func (r *suggestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Suggestion, error) {
	query := `
		SELECT id, title, body, category, contact, author_id, status, admin_reply, replied_at, responded_by, is_flagged, created_at, updated_at
		FROM suggestions
		WHERE id = $1
	`
	var s domain.Suggestion
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.Title, &s.Body, &s.Category, &s.Contact, &s.AuthorID, &s.Status,
		&s.AdminReply, &s.RepliedAt, &s.RespondedBy, &s.IsFlagged, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSuggestionNotFound
		}
		return nil, fmt.Errorf("failed to get suggestion: %w", err)
	}
	return &s, nil
}

func (r *suggestionRepository) List(ctx context.Context, limit, offset int, filter ports.SuggestionFilter) ([]*domain.Suggestion, error) {
	query := `
		SELECT id, title, body, category, contact, author_id, status, admin_reply, replied_at, responded_by, is_flagged, created_at, updated_at
		FROM suggestions
		WHERE ($1::VARCHAR IS NULL OR status = $1)
		  AND ($2::UUID IS NULL OR author_id = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	var status any
	if filter.Status != nil {
		status = string(*filter.Status)
	}
	var author any
	if filter.AuthorID != nil {
		author = *filter.AuthorID
	}

	rows, err := r.db.QueryContext(ctx, query, status, author, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []*domain.Suggestion
	for rows.Next() {
		var s domain.Suggestion
		if err := rows.Scan(
			&s.ID, &s.Title, &s.Body, &s.Category, &s.Contact, &s.AuthorID, &s.Status,
			&s.AdminReply, &s.RepliedAt, &s.RespondedBy, &s.IsFlagged, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan suggestion: %w", err)
		}
		suggestions = append(suggestions, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating suggestions: %w", err)
	}
	return suggestions, nil
}

// Update writes the author-editable fields. The status guard keeps a
// concurrent archive from being overwritten.
func (r *suggestionRepository) Update(ctx context.Context, s *domain.Suggestion) error {
	query := `
		UPDATE suggestions
		SET title = $2, body = $3, category = $4, contact = $5, updated_at = $6
		WHERE id = $1 AND status <> 'archived'
	`
	res, err := r.db.ExecContext(ctx, query, s.ID, s.Title, s.Body, s.Category, s.Contact, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update suggestion: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return r.missingOrArchived(ctx, s.ID)
	}
	return nil
}

// Respond is a single compare-and-set update: archived rows never match, so
// two concurrent admin actions cannot both reply past an archive.
func (r *suggestionRepository) Respond(ctx context.Context, id uuid.UUID, reply string, status domain.SuggestionStatus, adminID uuid.UUID, at time.Time) error {
	query := `
		UPDATE suggestions
		SET admin_reply = $2, replied_at = $3, responded_by = $4, status = $5, updated_at = $3
		WHERE id = $1 AND status <> 'archived'
	`
	res, err := r.db.ExecContext(ctx, query, id, reply, at, adminID, status)
	if err != nil {
		return fmt.Errorf("failed to respond to suggestion: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read respond result: %w", err)
	}
	if affected == 0 {
		return r.missingOrArchived(ctx, id)
	}
	return nil
}

func (r *suggestionRepository) missingOrArchived(ctx context.Context, id uuid.UUID) error {
	var status domain.SuggestionStatus
	err := r.db.QueryRowContext(ctx, `SELECT status FROM suggestions WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSuggestionNotFound
		}
		return fmt.Errorf("failed to check suggestion status: %w", err)
	}
	return domain.ErrSuggestionArchived
}

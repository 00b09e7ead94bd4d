package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/domain"
	"github.com/GuidoMontecinosP/CEE-Connect-Sistema-Web-y-movil-para-la-Gestion-del-Centro-de-Estudiantes-sub000/internal/core/ports"
)

type muteRepository struct {
	db *sql.DB
}

func NewMuteRepository(db *sql.DB) ports.MuteRepository {
	return &muteRepository{
		db: db,
	}
}

func (r *muteRepository) Save(ctx context.Context, mute *domain.Mute) error {
	query := `
		INSERT INTO mutes (id, user_id, reason, start_at, end_at, lifted_early, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		mute.ID, mute.UserID, mute.Reason, mute.StartAt, mute.EndAt, mute.LiftedEarly, mute.CreatedBy, mute.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save mute: %w", err)
	}
	return nil
}

// HasActive checks the intervals against now. Expired mutes simply stop
// matching; no write ever marks them as over.
func (r *muteRepository) HasActive(ctx context.Context, userID uuid.UUID, now time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM mutes
			WHERE user_id = $1 AND NOT lifted_early AND start_at <= $2 AND end_at > $2
		)
	`
	var active bool
	if err := r.db.QueryRowContext(ctx, query, userID, now).Scan(&active); err != nil {
		return false, fmt.Errorf("failed to check mute state: %w", err)
	}
	return active, nil
}

func (r *muteRepository) ListActive(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.Mute, error) {
	query := `
		SELECT id, user_id, reason, start_at, end_at, lifted_early, created_by, created_at
		FROM mutes
		WHERE user_id = $1 AND NOT lifted_early AND start_at <= $2 AND end_at > $2
		ORDER BY end_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list mutes: %w", err)
	}
	defer rows.Close()

	var mutes []*domain.Mute
	for rows.Next() {
		var m domain.Mute
		if err := rows.Scan(&m.ID, &m.UserID, &m.Reason, &m.StartAt, &m.EndAt, &m.LiftedEarly, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mute: %w", err)
		}
		mutes = append(mutes, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mutes: %w", err)
	}
	return mutes, nil
}

func (r *muteRepository) LiftActive(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error) {
	query := `
		UPDATE mutes
		SET lifted_early = TRUE
		WHERE user_id = $1 AND NOT lifted_early AND start_at <= $2 AND end_at > $2
	`
	res, err := r.db.ExecContext(ctx, query, userID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to lift mutes: %w", err)
	}
	lifted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read lift result: %w", err)
	}
	return lifted, nil
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/checadormx/checador-backend-go/internal/domain/justification"
	"github.com/checadormx/checador-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type justificationRepository struct {
	db *database.DB
}

func NewJustificationRepository(db *database.DB) justification.JustificationRepository {
	return &justificationRepository{db: db}
}

// GetByEmployeeAndDate implements justification.JustificationRepository.
func (r *justificationRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, reason, created_at
		FROM justifications
		WHERE employee_id = $1 AND date = $2
	`

	var j justification.Justification
	err := q.QueryRow(ctx, query, employeeID, date).
		Scan(&j.ID, &j.EmployeeID, &j.Date, &j.Reason, &j.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get justification: %w", err)
	}

	return &j, nil
}

// Upsert implements justification.JustificationRepository.
func (r *justificationRepository) Upsert(ctx context.Context, j justification.Justification) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO justifications (employee_id, date, reason)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date) DO UPDATE SET reason = EXCLUDED.reason
	`

	if _, err := q.Exec(ctx, query, j.EmployeeID, j.Date, j.Reason); err != nil {
		return fmt.Errorf("failed to upsert justification: %w", err)
	}

	return nil
}

// Delete implements justification.JustificationRepository. Deleting an
// absent row is not an error.
func (r *justificationRepository) Delete(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM justifications WHERE employee_id = $1 AND date = $2`
	if _, err := q.Exec(ctx, query, employeeID, date); err != nil {
		return fmt.Errorf("failed to delete justification: %w", err)
	}

	return nil
}

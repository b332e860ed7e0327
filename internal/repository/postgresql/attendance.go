package postgresql

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/checadormx/checador-backend-go/internal/domain/attendance"
	"github.com/checadormx/checador-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) attendance.PunchRepository {
	return &punchRepository{db: db}
}

// CreateOpen implements attendance.PunchRepository.
// The WHERE NOT EXISTS guard plus the partial unique index on open
// punches make the "at most one open punch" invariant hold under
// concurrent check-ins.
func (r *punchRepository) CreateOpen(ctx context.Context, employeeID string, date time.Time, checkIn time.Time) (attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_punches (employee_id, date, check_in)
		SELECT $1, $2, $3
		WHERE NOT EXISTS (
			SELECT 1 FROM attendance_punches
			WHERE employee_id = $1 AND check_in IS NOT NULL AND check_out IS NULL
		)
		RETURNING id, created_at
	`

	p := attendance.Punch{
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    &checkIn,
	}
	err := q.QueryRow(ctx, query, employeeID, date, checkIn).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Punch{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return p, nil
}

// CloseOpen implements attendance.PunchRepository.
func (r *punchRepository) CloseOpen(ctx context.Context, employeeID string, checkOut time.Time) (attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_punches SET check_out = $2
		WHERE id = (
			SELECT id FROM attendance_punches
			WHERE employee_id = $1 AND check_in IS NOT NULL AND check_out IS NULL
			ORDER BY check_in DESC
			LIMIT 1
		)
		RETURNING id, employee_id, date, check_in, check_out, created_at
	`

	var p attendance.Punch
	err := q.QueryRow(ctx, query, employeeID, checkOut).Scan(
		&p.ID, &p.EmployeeID, &p.Date, &p.CheckIn, &p.CheckOut, &p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Punch{}, attendance.ErrNothingToClose
		}
		return attendance.Punch{}, fmt.Errorf("failed to close punch: %w", err)
	}

	return p, nil
}

// GetByID implements attendance.PunchRepository.
func (r *punchRepository) GetByID(ctx context.Context, id string) (attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, created_at
		FROM attendance_punches
		WHERE id = $1
	`

	var p attendance.Punch
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.EmployeeID, &p.Date, &p.CheckIn, &p.CheckOut, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Punch{}, attendance.ErrPunchNotFound
		}
		return attendance.Punch{}, fmt.Errorf("failed to get punch by ID: %w", err)
	}

	return p, nil
}

// ListByEmployeeAndDate implements attendance.PunchRepository.
// Ordered oldest first; the caller treats the last element as the
// authoritative punch for the date.
func (r *punchRepository) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, created_at
		FROM attendance_punches
		WHERE employee_id = $1 AND date = $2
		ORDER BY check_in ASC NULLS FIRST, created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows, false)
}

// List implements attendance.PunchRepository.
func (r *punchRepository) List(ctx context.Context, filter attendance.PunchFilter) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.date, p.check_in, p.check_out, p.created_at, e.full_name
		FROM attendance_punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE 1=1
	`
	var args []interface{}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += ` AND p.date = $` + strconv.Itoa(len(args))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += ` AND p.employee_id = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY COALESCE(p.check_in, p.created_at) DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows, true)
}

// ListRecent implements attendance.PunchRepository.
// Most recent punch event first, where the event time of a closed
// punch is its check-out.
func (r *punchRepository) ListRecent(ctx context.Context, limit int) ([]attendance.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.date, p.check_in, p.check_out, p.created_at, e.full_name
		FROM attendance_punches p
		JOIN employees e ON e.id = p.employee_id
		ORDER BY COALESCE(p.check_out, p.check_in, p.created_at) DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent punches: %w", err)
	}
	defer rows.Close()

	return collectPunches(rows, true)
}

// Update implements attendance.PunchRepository.
func (r *punchRepository) Update(ctx context.Context, p attendance.Punch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_punches SET date = $2, check_in = $3, check_out = $4
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, p.ID, p.Date, p.CheckIn, p.CheckOut)
	if err != nil {
		return fmt.Errorf("failed to update punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrPunchNotFound
	}

	return nil
}

// Delete implements attendance.PunchRepository.
func (r *punchRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_punches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrPunchNotFound
	}

	return nil
}

func collectPunches(rows pgx.Rows, withName bool) ([]attendance.Punch, error) {
	var punches []attendance.Punch
	for rows.Next() {
		var p attendance.Punch
		var err error
		if withName {
			err = rows.Scan(&p.ID, &p.EmployeeID, &p.Date, &p.CheckIn, &p.CheckOut, &p.CreatedAt, &p.EmployeeName)
		} else {
			err = rows.Scan(&p.ID, &p.EmployeeID, &p.Date, &p.CheckIn, &p.CheckOut, &p.CreatedAt)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	return punches, rows.Err()
}

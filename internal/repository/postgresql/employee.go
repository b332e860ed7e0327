package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/checadormx/checador-backend-go/internal/domain/employee"
	"github.com/checadormx/checador-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, full_name, weekly_salary, work_days, schedule_in, schedule_out,
	overtime_hourly_rate, active, card_uuid, pin_hash,
	kiosk_token, kiosk_token_expiry, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FullName, &e.WeeklySalary, &e.WorkDays, &e.ScheduleIn, &e.ScheduleOut,
		&e.OvertimeHourlyRate, &e.Active, &e.CardUUID, &e.PINHash,
		&e.KioskToken, &e.KioskTokenExpiry, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			full_name, weekly_salary, work_days, schedule_in, schedule_out,
			overtime_hourly_rate, active, card_uuid, pin_hash
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.FullName, e.WeeklySalary, e.WorkDays, e.ScheduleIn, e.ScheduleOut,
		e.OvertimeHourlyRate, e.Active, e.CardUUID, e.PINHash,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return e, nil
}

// GetByCardUUID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByCardUUID(ctx context.Context, cardUUID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE card_uuid = $1`, cardUUID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by card uuid: %w", err)
	}

	return e, nil
}

// GetByKioskToken implements employee.EmployeeRepository.
func (r *employeeRepository) GetByKioskToken(ctx context.Context, token string, now time.Time) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE kiosk_token = $1 AND kiosk_token_expiry > $2
		LIMIT 1`

	e, err := scanEmployee(q.QueryRow(ctx, query, token, now))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by kiosk token: %w", err)
	}

	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			full_name = $2, weekly_salary = $3, work_days = $4,
			schedule_in = $5, schedule_out = $6, overtime_hourly_rate = $7,
			active = $8, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		e.ID, e.FullName, e.WeeklySalary, e.WorkDays,
		e.ScheduleIn, e.ScheduleOut, e.OvertimeHourlyRate, e.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SetPINHash implements employee.EmployeeRepository.
func (r *employeeRepository) SetPINHash(ctx context.Context, id string, pinHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET pin_hash = $2, updated_at = NOW() WHERE id = $1`, id, pinHash)
	if err != nil {
		return fmt.Errorf("failed to set employee pin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SetKioskToken implements employee.EmployeeRepository.
func (r *employeeRepository) SetKioskToken(ctx context.Context, id string, token string, expiry time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees SET kiosk_token = $2, kiosk_token_expiry = $3, updated_at = NOW()
		WHERE id = $1
	`, id, token, expiry)
	if err != nil {
		return fmt.Errorf("failed to set kiosk token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

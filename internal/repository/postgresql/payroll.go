package postgresql

import (
	"context"
	"fmt"

	"github.com/checadormx/checador-backend-go/internal/domain/payroll"
	"github.com/checadormx/checador-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type transactionRepository struct {
	db *database.DB
}

func NewTransactionRepository(db *database.DB) payroll.TransactionRepository {
	return &transactionRepository{db: db}
}

// ListByEmployeeAndPeriod implements payroll.TransactionRepository.
func (r *transactionRepository) ListByEmployeeAndPeriod(ctx context.Context, employeeID, period string) ([]payroll.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, period, concept_id, amount, created_at, updated_at
		FROM payroll_transactions
		WHERE employee_id = $1 AND period = $2
	`

	rows, err := q.Query(ctx, query, employeeID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll transactions: %w", err)
	}
	defer rows.Close()

	var transactions []payroll.Transaction
	for rows.Next() {
		var t payroll.Transaction
		if err := rows.Scan(&t.ID, &t.EmployeeID, &t.Period, &t.ConceptID, &t.Amount, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payroll transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// Upsert implements payroll.TransactionRepository.
func (r *transactionRepository) Upsert(ctx context.Context, employeeID, period, conceptID string, amount decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_transactions (employee_id, period, concept_id, amount)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, period, concept_id)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, employeeID, period, conceptID, amount); err != nil {
		return fmt.Errorf("failed to upsert payroll transaction: %w", err)
	}

	return nil
}

// Delete implements payroll.TransactionRepository. Deleting an absent
// row is not an error.
func (r *transactionRepository) Delete(ctx context.Context, employeeID, period, conceptID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM payroll_transactions WHERE employee_id = $1 AND period = $2 AND concept_id = $3`
	if _, err := q.Exec(ctx, query, employeeID, period, conceptID); err != nil {
		return fmt.Errorf("failed to delete payroll transaction: %w", err)
	}

	return nil
}

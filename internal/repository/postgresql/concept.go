package postgresql

import (
	"context"
	"fmt"

	"github.com/checadormx/checador-backend-go/internal/domain/concept"
	"github.com/checadormx/checador-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type conceptRepository struct {
	db *database.DB
}

func NewConceptRepository(db *database.DB) concept.ConceptRepository {
	return &conceptRepository{db: db}
}

// Create implements concept.ConceptRepository.
func (r *conceptRepository) Create(ctx context.Context, c concept.Concept) (concept.Concept, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO concepts (name, kind, fixed_amount, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, c.Name, c.Kind, c.FixedAmount, c.Active).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return concept.Concept{}, fmt.Errorf("failed to create concept: %w", err)
	}

	return c, nil
}

// GetByID implements concept.ConceptRepository.
func (r *conceptRepository) GetByID(ctx context.Context, id string) (concept.Concept, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, kind, fixed_amount, active, created_at, updated_at
		FROM concepts
		WHERE id = $1
	`

	var c concept.Concept
	err := q.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Kind, &c.FixedAmount, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return concept.Concept{}, concept.ErrConceptNotFound
		}
		return concept.Concept{}, fmt.Errorf("failed to get concept by ID: %w", err)
	}

	return c, nil
}

// List implements concept.ConceptRepository.
func (r *conceptRepository) List(ctx context.Context, activeOnly bool) ([]concept.Concept, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, kind, fixed_amount, active, created_at, updated_at
		FROM concepts
	`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list concepts: %w", err)
	}
	defer rows.Close()

	var concepts []concept.Concept
	for rows.Next() {
		var c concept.Concept
		if err := rows.Scan(&c.ID, &c.Name, &c.Kind, &c.FixedAmount, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan concept: %w", err)
		}
		concepts = append(concepts, c)
	}
	return concepts, rows.Err()
}

// Update implements concept.ConceptRepository.
func (r *conceptRepository) Update(ctx context.Context, c concept.Concept) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE concepts SET
			name = $2, kind = $3, fixed_amount = $4, active = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, c.ID, c.Name, c.Kind, c.FixedAmount, c.Active)
	if err != nil {
		return fmt.Errorf("failed to update concept: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return concept.ErrConceptNotFound
	}

	return nil
}

// Delete implements concept.ConceptRepository.
func (r *conceptRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM concepts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete concept: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return concept.ErrConceptNotFound
	}

	return nil
}

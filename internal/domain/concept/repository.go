package concept

import (
	"context"
)

// ConceptRepository defines data access methods for pay concepts.
type ConceptRepository interface {
	Create(ctx context.Context, c Concept) (Concept, error)
	GetByID(ctx context.Context, id string) (Concept, error)
	List(ctx context.Context, activeOnly bool) ([]Concept, error)
	Update(ctx context.Context, c Concept) error
	Delete(ctx context.Context, id string) error
}

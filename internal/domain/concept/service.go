package concept

import (
	"context"
)

// ConceptService defines business logic for the pay concept catalog.
type ConceptService interface {
	Create(ctx context.Context, req CreateConceptRequest) (ConceptResponse, error)
	Get(ctx context.Context, id string) (ConceptResponse, error)
	List(ctx context.Context, activeOnly bool) ([]ConceptResponse, error)
	Update(ctx context.Context, req UpdateConceptRequest) (ConceptResponse, error)
	Delete(ctx context.Context, id string) error
}

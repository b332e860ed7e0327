package concept

import (
	"context"

	"github.com/checadormx/checador-backend-go/internal/domain/concept"
)

type conceptService struct {
	repo concept.ConceptRepository
}

func NewConceptService(repo concept.ConceptRepository) concept.ConceptService {
	return &conceptService{repo: repo}
}

// Create implements concept.ConceptService.
func (s *conceptService) Create(ctx context.Context, req concept.CreateConceptRequest) (concept.ConceptResponse, error) {
	if err := req.Validate(); err != nil {
		return concept.ConceptResponse{}, err
	}

	c := concept.Concept{
		Name:        req.Name,
		Kind:        req.Kind,
		FixedAmount: req.FixedAmount,
		Active:      true,
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return concept.ConceptResponse{}, err
	}

	return concept.ToResponse(created), nil
}

// Get implements concept.ConceptService.
func (s *conceptService) Get(ctx context.Context, id string) (concept.ConceptResponse, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return concept.ConceptResponse{}, err
	}
	return concept.ToResponse(c), nil
}

// List implements concept.ConceptService.
func (s *conceptService) List(ctx context.Context, activeOnly bool) ([]concept.ConceptResponse, error) {
	concepts, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]concept.ConceptResponse, 0, len(concepts))
	for _, c := range concepts {
		responses = append(responses, concept.ToResponse(c))
	}
	return responses, nil
}

// Update implements concept.ConceptService. The kind is immutable once
// created; rename or retire instead.
func (s *conceptService) Update(ctx context.Context, req concept.UpdateConceptRequest) (concept.ConceptResponse, error) {
	if err := req.Validate(); err != nil {
		return concept.ConceptResponse{}, err
	}

	c, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return concept.ConceptResponse{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.FixedAmount != nil {
		c.FixedAmount = *req.FixedAmount
	}
	if req.Active != nil {
		c.Active = *req.Active
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return concept.ConceptResponse{}, err
	}

	return concept.ToResponse(c), nil
}

// Delete implements concept.ConceptService.
func (s *conceptService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

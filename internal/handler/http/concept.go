package http

import (
	"encoding/json"
	"net/http"

	"github.com/checadormx/checador-backend-go/internal/domain/concept"
	"github.com/checadormx/checador-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ConceptHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type conceptHandlerImpl struct {
	conceptService concept.ConceptService
}

func NewConceptHandler(service concept.ConceptService) ConceptHandler {
	return &conceptHandlerImpl{
		conceptService: service,
	}
}

// Create implements ConceptHandler.
func (h *conceptHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req concept.CreateConceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.conceptService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Concept created successfully", result)
}

// Get implements ConceptHandler.
func (h *conceptHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.conceptService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ConceptHandler.
func (h *conceptHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	results, err := h.conceptService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements ConceptHandler.
func (h *conceptHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req concept.UpdateConceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.conceptService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Concept updated successfully", result)
}

// Delete implements ConceptHandler.
func (h *conceptHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.conceptService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Concept deleted successfully", nil)
}

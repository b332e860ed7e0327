package http

import (
	"encoding/json"
	"net/http"

	"github.com/checadormx/checador-backend-go/internal/domain/kiosk"
	"github.com/checadormx/checador-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type KioskHandler interface {
	Card(w http.ResponseWriter, r *http.Request)
	CardBarcode(w http.ResponseWriter, r *http.Request)
	Punch(w http.ResponseWriter, r *http.Request)
}

type kioskHandlerImpl struct {
	kioskService kiosk.KioskService
}

func NewKioskHandler(service kiosk.KioskService) KioskHandler {
	return &kioskHandlerImpl{
		kioskService: service,
	}
}

// Card implements KioskHandler. Each request rotates the token.
func (h *kioskHandlerImpl) Card(w http.ResponseWriter, r *http.Request) {
	cardUUID := chi.URLParam(r, "uuid")

	result, err := h.kioskService.IssueToken(r.Context(), cardUUID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CardBarcode implements KioskHandler.
func (h *kioskHandlerImpl) CardBarcode(w http.ResponseWriter, r *http.Request) {
	cardUUID := chi.URLParam(r, "uuid")

	data, err := h.kioskService.CardBarcode(r.Context(), cardUUID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Punch implements KioskHandler.
func (h *kioskHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req kiosk.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.kioskService.Punch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch recorded", result)
}

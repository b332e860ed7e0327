package http

import (
	"net/http"

	"github.com/checadormx/checador-backend-go/internal/domain/dashboard"
	"github.com/checadormx/checador-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Today(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(service dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: service,
	}
}

// Today implements DashboardHandler.
func (h *dashboardHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

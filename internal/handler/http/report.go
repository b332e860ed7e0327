package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/checadormx/checador-backend-go/internal/domain/report"
	"github.com/checadormx/checador-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	SaveTransactions(w http.ResponseWriter, r *http.Request)
	SaveJustifications(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(service report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: service,
	}
}

// Generate implements ReportHandler.
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	result, err := h.reportService.Generate(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveTransactions implements ReportHandler.
func (h *reportHandlerImpl) SaveTransactions(w http.ResponseWriter, r *http.Request) {
	var req report.SaveTransactionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.reportService.SaveTransactions(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transactions saved successfully", nil)
}

// SaveJustifications implements ReportHandler.
func (h *reportHandlerImpl) SaveJustifications(w http.ResponseWriter, r *http.Request) {
	var req report.SaveJustificationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.reportService.SaveJustifications(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justifications saved successfully", nil)
}

// ExportCSV implements ReportHandler.
func (h *reportHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	filename, data, err := h.reportService.ExportCSV(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

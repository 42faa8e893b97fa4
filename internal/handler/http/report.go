package http

import (
	"net/http"

	"github.com/storemate/storemate-backend-go/internal/domain/report"
	"github.com/storemate/storemate-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	AttendanceSummary(w http.ResponseWriter, r *http.Request)
	SalesSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func dateRangeFromQuery(r *http.Request) report.DateRangeRequest {
	query := r.URL.Query()
	return report.DateRangeRequest{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}
}

// AttendanceSummary implements ReportHandler.
func (h *reportHandlerImpl) AttendanceSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.AttendanceSummary(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SalesSummary implements ReportHandler.
func (h *reportHandlerImpl) SalesSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.SalesSummary(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

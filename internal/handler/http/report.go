package http

import (
	"fmt"
	"net/http"

	"github.com/gatetrack/gatetrack-backend-go/internal/domain/report"
	"github.com/gatetrack/gatetrack-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Build(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func parseBuildRequest(r *http.Request) report.BuildRequest {
	req := report.BuildRequest{
		FromDate: r.URL.Query().Get("from"),
		ToDate:   r.URL.Query().Get("to"),
	}
	if department := r.URL.Query().Get("department"); department != "" {
		req.Department = &department
	}
	req.OnlyAbsent = r.URL.Query().Get("only_absent") == "true"
	return req
}

// Build implements ReportHandler.
func (h *reportHandlerImpl) Build(w http.ResponseWriter, r *http.Request) {
	req := parseBuildRequest(r)

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.Build(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements ReportHandler.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := parseBuildRequest(r)

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	buf, filename, err := h.reportService.Export(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(buf.Bytes())
}

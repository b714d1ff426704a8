package handler

import (
	"net/http"

	"hospital-admin/internal/delivery/http/view"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/response"

	"github.com/sirupsen/logrus"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	renderer      *view.Renderer
	log           *logrus.Logger
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, renderer *view.Renderer, log *logrus.Logger) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		renderer:      renderer,
		log:           log,
	}
}

func (h *ReportHandler) ServiceReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.GetServiceReport(r.Context())
	if err != nil {
		response.Text(w, http.StatusOK, msgReportFailed)
		return
	}

	renderPage(w, h.renderer, h.log, view.PageReport, report, msgReportFailed)
}

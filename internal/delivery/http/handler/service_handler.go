package handler

import (
	"net/http"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/delivery/http/view"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/metrics"
	"hospital-admin/pkg/response"
	"hospital-admin/pkg/validator"

	"github.com/sirupsen/logrus"
)

type ServiceHandler struct {
	serviceUsecase usecase.ServiceUsecase
	validator      *validator.CustomValidator
	renderer       *view.Renderer
	metrics        *metrics.Metrics
	log            *logrus.Logger
}

func NewServiceHandler(
	serviceUsecase usecase.ServiceUsecase,
	validator *validator.CustomValidator,
	renderer *view.Renderer,
	metrics *metrics.Metrics,
	log *logrus.Logger,
) *ServiceHandler {
	return &ServiceHandler{
		serviceUsecase: serviceUsecase,
		validator:      validator,
		renderer:       renderer,
		metrics:        metrics,
		log:            log,
	}
}

// ServiceForm serves the static service creation form
func (h *ServiceHandler) ServiceForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, h.renderer, h.log, view.PageService, nil, msgServicesLoadFailed)
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceRequest
	if err := decodeForm(w, r, &req); err != nil {
		h.metrics.RecordSubmission(entityService, metrics.OutcomeRejected)
		response.Text(w, http.StatusOK, msgServiceInvalid)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.log.WithField("invalid_fields", h.validator.FormatValidationErrors(err)).Info("Rejected service form")
		h.metrics.RecordSubmission(entityService, metrics.OutcomeRejected)
		response.Text(w, http.StatusOK, msgServiceInvalid)
		return
	}

	if _, err := h.serviceUsecase.CreateService(r.Context(), &req); err != nil {
		h.metrics.RecordSubmission(entityService, metrics.OutcomeError)
		response.Text(w, http.StatusOK, msgServiceDBFailed)
		return
	}

	h.metrics.RecordSubmission(entityService, metrics.OutcomeCreated)
	response.Text(w, http.StatusOK, msgServiceCreated)
}

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

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	serviceUsecase usecase.ServiceUsecase
	validator      *validator.CustomValidator
	renderer       *view.Renderer
	metrics        *metrics.Metrics
	log            *logrus.Logger
}

func NewPatientHandler(
	patientUsecase usecase.PatientUsecase,
	serviceUsecase usecase.ServiceUsecase,
	validator *validator.CustomValidator,
	renderer *view.Renderer,
	metrics *metrics.Metrics,
	log *logrus.Logger,
) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		serviceUsecase: serviceUsecase,
		validator:      validator,
		renderer:       renderer,
		metrics:        metrics,
		log:            log,
	}
}

func (h *PatientHandler) PatientForm(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceUsecase.GetAllServices(r.Context())
	if err != nil {
		response.Text(w, http.StatusOK, msgServicesLoadFailed)
		return
	}

	renderPage(w, h.renderer, h.log, view.PagePatient, services, msgServicesLoadFailed)
}

// CreatePatient only whitelists names and service; age, situation and groupe
// reach the database as submitted.
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := decodeForm(w, r, &req); err != nil {
		h.metrics.RecordSubmission(entityPatient, metrics.OutcomeRejected)
		response.Text(w, http.StatusOK, msgPatientInvalid)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.log.WithField("invalid_fields", h.validator.FormatValidationErrors(err)).Info("Rejected patient form")
		h.metrics.RecordSubmission(entityPatient, metrics.OutcomeRejected)
		response.Text(w, http.StatusOK, msgPatientInvalid)
		return
	}

	if _, err := h.patientUsecase.CreatePatient(r.Context(), &req); err != nil {
		h.metrics.RecordSubmission(entityPatient, metrics.OutcomeError)
		response.Text(w, http.StatusOK, msgPatientDBFailed)
		return
	}

	h.metrics.RecordSubmission(entityPatient, metrics.OutcomeCreated)
	response.Text(w, http.StatusOK, msgPatientCreated)
}

package handler

import (
	"errors"
	"net/http"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/delivery/http/view"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/metrics"
	"hospital-admin/pkg/response"
	"hospital-admin/pkg/validator"

	"github.com/sirupsen/logrus"
)

type DoctorHandler struct {
	doctorUsecase  usecase.DoctorUsecase
	serviceUsecase usecase.ServiceUsecase
	validator      *validator.CustomValidator
	renderer       *view.Renderer
	metrics        *metrics.Metrics
	log            *logrus.Logger
}

func NewDoctorHandler(
	doctorUsecase usecase.DoctorUsecase,
	serviceUsecase usecase.ServiceUsecase,
	validator *validator.CustomValidator,
	renderer *view.Renderer,
	metrics *metrics.Metrics,
	log *logrus.Logger,
) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase:  doctorUsecase,
		serviceUsecase: serviceUsecase,
		validator:      validator,
		renderer:       renderer,
		metrics:        metrics,
		log:            log,
	}
}

// DoctorForm renders the doctor form with the list of services
func (h *DoctorHandler) DoctorForm(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceUsecase.GetAllServices(r.Context())
	if err != nil {
		response.Text(w, http.StatusOK, msgServicesLoadFailed)
		return
	}

	renderPage(w, h.renderer, h.log, view.PageDoctor, services, msgServicesLoadFailed)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := decodeForm(w, r, &req); err != nil {
		h.metrics.RecordSubmission(entityDoctor, metrics.OutcomeRejected)
		response.Text(w, http.StatusOK, msgDoctorInvalid)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.log.WithField("invalid_fields", h.validator.FormatValidationErrors(err)).Info("Rejected doctor form")
		h.metrics.RecordSubmission(entityDoctor, metrics.OutcomeRejected)
		response.Text(w, http.StatusOK, msgDoctorInvalid)
		return
	}

	_, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMatriculeExists):
			h.metrics.RecordSubmission(entityDoctor, metrics.OutcomeDuplicate)
			response.Text(w, http.StatusOK, msgMatriculeExists)
		case errors.Is(err, usecase.ErrMatriculeCheck):
			h.metrics.RecordSubmission(entityDoctor, metrics.OutcomeError)
			response.Text(w, http.StatusOK, msgMatriculeCheck)
		default:
			h.metrics.RecordSubmission(entityDoctor, metrics.OutcomeError)
			response.Text(w, http.StatusOK, msgDoctorDBFailed)
		}
		return
	}

	h.metrics.RecordSubmission(entityDoctor, metrics.OutcomeCreated)
	response.Text(w, http.StatusOK, msgDoctorCreated)
}

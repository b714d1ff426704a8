package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"
	"hospital-admin/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidAge is returned when age cannot be stored as an integer.
	ErrInvalidAge = errors.New("invalid age")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	reportCache service.ReportCache
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	reportCache service.ReportCache,
) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
		reportCache: reportCache,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	age, err := strconv.Atoi(strings.TrimSpace(req.Age))
	if err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, ErrInvalidAge
	}

	serviceID, err := parseServiceID(req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	patient := &entity.Patient{
		LastName:      req.LastName,
		FirstName:     req.FirstName,
		Age:           age,
		MaritalStatus: req.MaritalStatus,
		BloodGroup:    req.BloodGroup,
		ServiceID:     serviceID,
	}
	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		if isForeignKeyError(err, "service") {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	u.reportCache.Invalidate(ctx)

	return converter.PatientToResponse(patient), nil
}

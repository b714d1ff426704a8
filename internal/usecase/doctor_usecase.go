package usecase

import (
	"context"
	"errors"
	"fmt"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"
	"hospital-admin/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrMatriculeExists = errors.New("matricule already exists")
	// ErrMatriculeCheck wraps a failure of the lookup that precedes the insert.
	ErrMatriculeCheck = errors.New("failed to check matricule")
)

const matriculeConstraint = "docteurs_matricule_key"

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	reportCache service.ReportCache
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	reportCache service.ReportCache,
) DoctorUsecase {
	return &doctorUsecase{
		log:         log,
		doctorRepo:  doctorRepo,
		reportCache: reportCache,
	}
}

// CreateDoctor looks the matricule up before inserting. The lookup and the
// insert are not atomic; a concurrent duplicate is caught by the unique
// constraint and reported as ErrMatriculeExists.
func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	existing, err := u.doctorRepo.FindByMatricule(ctx, req.Matricule)
	if err != nil {
		u.log.Warnf("Failed to check matricule: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrMatriculeCheck, err)
	}
	if len(existing) > 0 {
		return nil, ErrMatriculeExists
	}

	serviceID, err := parseServiceID(req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	doctor := &entity.Doctor{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Matricule: req.Matricule,
		ServiceID: serviceID,
	}
	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		if isDuplicateKeyError(err, matriculeConstraint) {
			return nil, ErrMatriculeExists
		}
		if isForeignKeyError(err, "service") {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	u.reportCache.Invalidate(ctx)

	return converter.DoctorToResponse(doctor), nil
}

package usecase

import (
	"context"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/domain/repository"
	"hospital-admin/internal/service"

	"github.com/sirupsen/logrus"
)

type ServiceUsecase interface {
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetAllServices(ctx context.Context) (*dto.ServiceListResponse, error)
}

type serviceUsecase struct {
	log         *logrus.Logger
	serviceRepo repository.ServiceRepository
	reportCache service.ReportCache
}

func NewServiceUsecase(
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	reportCache service.ReportCache,
) ServiceUsecase {
	return &serviceUsecase{
		log:         log,
		serviceRepo: serviceRepo,
		reportCache: reportCache,
	}
}

func (u *serviceUsecase) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	svc := &entity.Service{
		Name: req.Name,
	}
	if err := u.serviceRepo.Create(ctx, svc); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	u.reportCache.Invalidate(ctx)

	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) GetAllServices(ctx context.Context) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all services: %+v", err)
		return nil, err
	}

	responses := converter.ServicesToResponses(services)

	return &dto.ServiceListResponse{
		Services: responses,
		Total:    len(responses),
	}, nil
}

package usecase

import (
	"context"

	"hospital-admin/internal/converter"
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/repository"
	"hospital-admin/internal/service"

	"github.com/sirupsen/logrus"
)

type ReportUsecase interface {
	GetServiceReport(ctx context.Context) (*dto.ReportResponse, error)
}

type reportUsecase struct {
	log         *logrus.Logger
	reportRepo  repository.ReportRepository
	reportCache service.ReportCache
}

func NewReportUsecase(
	log *logrus.Logger,
	reportRepo repository.ReportRepository,
	reportCache service.ReportCache,
) ReportUsecase {
	return &reportUsecase{
		log:         log,
		reportRepo:  reportRepo,
		reportCache: reportCache,
	}
}

func (u *reportUsecase) GetServiceReport(ctx context.Context) (*dto.ReportResponse, error) {
	cached, generation, ok := u.reportCache.Get(ctx)
	if ok {
		return cached, nil
	}

	rows, err := u.reportRepo.ServiceReport(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch service report: %+v", err)
		return nil, err
	}

	report := converter.ReportRowsToResponse(rows)
	u.reportCache.Set(ctx, generation, report)

	return report, nil
}

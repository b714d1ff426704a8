package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
)

type ReportRepository interface {
	ServiceReport(ctx context.Context) ([]entity.ServiceReportRow, error)
}

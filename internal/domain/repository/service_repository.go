package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindAll(ctx context.Context) ([]entity.Service, error)
}

package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
}

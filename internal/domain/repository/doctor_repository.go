package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByMatricule(ctx context.Context, matricule string) ([]entity.Doctor, error)
}

package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
	domainRepo "hospital-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return r.db.WithContext(ctx).Omit("Service").Create(doctor).Error
}

func (r *doctorRepository) FindByMatricule(ctx context.Context, matricule string) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).Where("matricule = ?", matricule).Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

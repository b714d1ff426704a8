package converter

import (
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:        doctor.ID,
		LastName:  doctor.LastName,
		FirstName: doctor.FirstName,
		Matricule: doctor.Matricule,
		ServiceID: doctor.ServiceID,
	}
}

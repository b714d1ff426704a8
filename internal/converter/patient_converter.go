package converter

import (
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:            patient.ID,
		LastName:      patient.LastName,
		FirstName:     patient.FirstName,
		Age:           patient.Age,
		MaritalStatus: patient.MaritalStatus,
		BloodGroup:    patient.BloodGroup,
		ServiceID:     patient.ServiceID,
	}
}

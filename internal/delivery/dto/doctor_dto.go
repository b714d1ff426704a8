package dto

// Request DTOs

// CreateDoctorRequest mirrors the doctor form. Matricule is not whitelisted.
type CreateDoctorRequest struct {
	LastName  string `form:"nom" validate:"whitelist"`
	FirstName string `form:"prénom" validate:"whitelist"`
	Matricule string `form:"matricule"`
	ServiceID string `form:"service" validate:"whitelist"`
}

// Response DTOs

type DoctorResponse struct {
	ID        int64  `json:"id"`
	LastName  string `json:"last_name"`
	FirstName string `json:"first_name"`
	Matricule string `json:"matricule"`
	ServiceID *int64 `json:"service_id,omitempty"`
}

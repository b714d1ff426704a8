package dto

// Request DTOs

// CreatePatientRequest mirrors the patient form. Age, marital status and
// blood group are passed through without the whitelist check.
type CreatePatientRequest struct {
	LastName      string `form:"nom" validate:"whitelist"`
	FirstName     string `form:"prénom" validate:"whitelist"`
	Age           string `form:"age"`
	MaritalStatus string `form:"situation"`
	BloodGroup    string `form:"groupe"`
	ServiceID     string `form:"service" validate:"whitelist"`
}

// Response DTOs

type PatientResponse struct {
	ID            int64  `json:"id"`
	LastName      string `json:"last_name"`
	FirstName     string `json:"first_name"`
	Age           int    `json:"age"`
	MaritalStatus string `json:"marital_status"`
	BloodGroup    string `json:"blood_group"`
	ServiceID     *int64 `json:"service_id,omitempty"`
}

package dto

// Request DTOs

type CreateServiceRequest struct {
	Name string `form:"nom_service" validate:"whitelist"`
}

// Response DTOs

type ServiceResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

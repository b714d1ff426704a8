package converter

import (
	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
)

// EmptyReportValue replaces a missing doctor or patient aggregate.
const EmptyReportValue = "Empty"

// ReportRowsToResponse converts aggregated report rows to the ReportResponse DTO
func ReportRowsToResponse(rows []entity.ServiceReportRow) *dto.ReportResponse {
	lines := make([]dto.ReportLine, len(rows))
	for i, row := range rows {
		lines[i] = dto.ReportLine{
			Service:  row.Service,
			Doctors:  orEmpty(row.Doctors),
			Patients: orEmpty(row.Patients),
		}
	}
	return &dto.ReportResponse{Reports: lines}
}

func orEmpty(s *string) string {
	if s == nil || *s == "" {
		return EmptyReportValue
	}
	return *s
}

package repository

import (
	"context"

	"hospital-admin/internal/domain/entity"
	domainRepo "hospital-admin/internal/domain/repository"

	"gorm.io/gorm"
)

// The || operator yields NULL for a missing joined row, so STRING_AGG stays
// NULL for services without doctors or patients.
const serviceReportQuery = `
	SELECT
		s.service_id,
		s.nom_service AS service,
		STRING_AGG(DISTINCT d.nom || ' ' || d.prenom, ', ' ORDER BY d.nom || ' ' || d.prenom) AS docteurs,
		STRING_AGG(DISTINCT p.nom || ' ' || p.prenom, ', ' ORDER BY p.nom || ' ' || p.prenom) AS patients
	FROM service s
	LEFT JOIN docteurs d ON d.service_id = s.service_id
	LEFT JOIN patients p ON p.service_id = s.service_id
	GROUP BY s.service_id, s.nom_service
	ORDER BY s.nom_service
`

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) ServiceReport(ctx context.Context) ([]entity.ServiceReportRow, error) {
	var rows []entity.ServiceReportRow
	if err := r.db.WithContext(ctx).Raw(serviceReportQuery).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

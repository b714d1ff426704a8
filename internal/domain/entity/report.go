package entity

// ServiceReportRow is one aggregated line of the service report.
// Doctors and Patients are nil when the service has nobody attached.
type ServiceReportRow struct {
	ServiceID int64   `gorm:"column:service_id"`
	Service   string  `gorm:"column:service"`
	Doctors   *string `gorm:"column:docteurs"`
	Patients  *string `gorm:"column:patients"`
}

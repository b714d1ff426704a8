package entity

// Service is a hospital department that doctors and patients belong to.
type Service struct {
	ID   int64  `gorm:"column:service_id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:nom_service;type:varchar(255);not null" json:"name"`

	// Relationships
	Doctors  []Doctor  `gorm:"foreignKey:ServiceID" json:"doctors,omitempty"`
	Patients []Patient `gorm:"foreignKey:ServiceID" json:"patients,omitempty"`
}

func (Service) TableName() string {
	return "service"
}

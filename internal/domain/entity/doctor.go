package entity

// Doctor represents a registered doctor. Matricule is unique across all doctors.
type Doctor struct {
	ID        int64  `gorm:"column:docteur_id;primaryKey;autoIncrement" json:"id"`
	LastName  string `gorm:"column:nom;type:varchar(255);not null" json:"last_name"`
	FirstName string `gorm:"column:prenom;type:varchar(255);not null" json:"first_name"`
	Matricule string `gorm:"column:matricule;type:varchar(100);uniqueIndex:docteurs_matricule_key;not null" json:"matricule"`
	ServiceID *int64 `gorm:"column:service_id;index" json:"service_id,omitempty"`

	// Relationships
	Service *Service `gorm:"foreignKey:ServiceID;references:ID;constraint:OnDelete:SET NULL" json:"service,omitempty"`
}

func (Doctor) TableName() string {
	return "docteurs"
}

package entity

// Patient represents an admitted patient
type Patient struct {
	ID            int64  `gorm:"column:patient_id;primaryKey;autoIncrement" json:"id"`
	LastName      string `gorm:"column:nom;type:varchar(255);not null" json:"last_name"`
	FirstName     string `gorm:"column:prenom;type:varchar(255);not null" json:"first_name"`
	Age           int    `gorm:"column:age" json:"age"`
	MaritalStatus string `gorm:"column:situation_matrimoniale;type:varchar(50)" json:"marital_status"`
	BloodGroup    string `gorm:"column:groupe_sanguin;type:varchar(10)" json:"blood_group"`
	ServiceID     *int64 `gorm:"column:service_id;index" json:"service_id,omitempty"`

	// Relationships
	Service *Service `gorm:"foreignKey:ServiceID;references:ID;constraint:OnDelete:SET NULL" json:"service,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

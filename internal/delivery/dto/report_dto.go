package dto

// ReportLine is one row of the service report. Doctors and Patients are
// comma separated "last first" names, or "Empty".
type ReportLine struct {
	Service  string `json:"service"`
	Doctors  string `json:"doctors"`
	Patients string `json:"patients"`
}

type ReportResponse struct {
	Reports []ReportLine `json:"reports"`
}

package handler

// User-facing messages. Every outcome of a form route is one of these,
// returned as plain text with status 200.
const (
	msgServiceCreated  = "Service ajouté avec succès !"
	msgServiceInvalid  = "Service non enregistré : Input invalide détecté !"
	msgServiceDBFailed = "Service non enregistré : Erreur base de données !"

	msgDoctorCreated   = "Doctor ajouté avec succès !"
	msgDoctorInvalid   = "Doctor non enregistré : Input invalide détecté !"
	msgDoctorDBFailed  = "Doctor non enregistré : Erreur base de données !"
	msgMatriculeExists = "Matricule déjà existant !"
	msgMatriculeCheck  = "Error checking matricule"

	msgPatientCreated  = "Patient ajouté avec succès !"
	msgPatientInvalid  = "Patient non enregistré : Input invalide détecté !"
	msgPatientDBFailed = "Patient non enregistré : Erreur base de données !"

	msgServicesLoadFailed = "Error loading services"
	msgReportFailed       = "Erreur récupération rapport !"
)

// Entity labels for submission metrics
const (
	entityService = "service"
	entityDoctor  = "doctor"
	entityPatient = "patient"
)

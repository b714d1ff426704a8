package http

import (
	"net/http"

	"hospital-admin/internal/delivery/http/handler"
	"hospital-admin/internal/delivery/http/middleware"
	"hospital-admin/internal/delivery/http/view"
	"hospital-admin/pkg/metrics"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	serviceHandler     *handler.ServiceHandler
	reportHandler      *handler.ReportHandler
	healthHandler      *handler.HealthHandler
	loggingMiddleware  *middleware.LoggingMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
	recoveryMiddleware *middleware.RecoveryMiddleware
	metrics            *metrics.Metrics
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	serviceHandler *handler.ServiceHandler,
	reportHandler *handler.ReportHandler,
	healthHandler *handler.HealthHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
	metrics *metrics.Metrics,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		patientHandler:     patientHandler,
		doctorHandler:      doctorHandler,
		serviceHandler:     serviceHandler,
		reportHandler:      reportHandler,
		healthHandler:      healthHandler,
		loggingMiddleware:  loggingMiddleware,
		metricsMiddleware:  metricsMiddleware,
		recoveryMiddleware: recoveryMiddleware,
		metrics:            metrics,
	}
}

func (r *Router) Setup() *mux.Router {
	// Middleware order: request id first so every later layer can log it
	r.router.Use(middleware.RequestID)
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.metricsMiddleware.Handle)
	r.router.Use(r.recoveryMiddleware.Handle)

	// Operational routes
	r.router.HandleFunc("/health", r.healthHandler.Health).Methods(http.MethodGet)
	r.router.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)
	r.router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", view.StaticHandler())).Methods(http.MethodGet)
	r.router.Handle("/", http.RedirectHandler("/rapport", http.StatusFound)).Methods(http.MethodGet)

	// Patient routes
	r.router.HandleFunc("/patient", r.patientHandler.PatientForm).Methods(http.MethodGet)
	r.router.HandleFunc("/patient", r.patientHandler.CreatePatient).Methods(http.MethodPost)

	// Doctor routes
	r.router.HandleFunc("/docteur", r.doctorHandler.DoctorForm).Methods(http.MethodGet)
	r.router.HandleFunc("/docteur", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)

	// Service routes
	r.router.HandleFunc("/service", r.serviceHandler.ServiceForm).Methods(http.MethodGet)
	r.router.HandleFunc("/service", r.serviceHandler.CreateService).Methods(http.MethodPost)

	// Report
	r.router.HandleFunc("/rapport", r.reportHandler.ServiceReport).Methods(http.MethodGet)

	return r.router
}

package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"hospital-admin/internal/delivery/dto"
	deliveryHttp "hospital-admin/internal/delivery/http"
	"hospital-admin/internal/delivery/http/handler"
	"hospital-admin/internal/delivery/http/middleware"
	"hospital-admin/internal/delivery/http/view"
	"hospital-admin/internal/usecase"
	"hospital-admin/pkg/metrics"
	"hospital-admin/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockServiceUsecase struct{ mock.Mock }

func (m *mockServiceUsecase) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.ServiceResponse)
	return resp, args.Error(1)
}

func (m *mockServiceUsecase) GetAllServices(ctx context.Context) (*dto.ServiceListResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*dto.ServiceListResponse)
	return resp, args.Error(1)
}

type mockDoctorUsecase struct{ mock.Mock }

func (m *mockDoctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.DoctorResponse)
	return resp, args.Error(1)
}

type mockPatientUsecase struct{ mock.Mock }

func (m *mockPatientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.PatientResponse)
	return resp, args.Error(1)
}

type mockReportUsecase struct{ mock.Mock }

func (m *mockReportUsecase) GetServiceReport(ctx context.Context) (*dto.ReportResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*dto.ReportResponse)
	return resp, args.Error(1)
}

type testApp struct {
	router   *mux.Router
	services *mockServiceUsecase
	doctors  *mockDoctorUsecase
	patients *mockPatientUsecase
	reports  *mockReportUsecase
	logs     *logtest.Hook
}

func newTestApp(t *testing.T, checks ...handler.HealthCheck) *testApp {
	t.Helper()

	log, hook := logtest.NewNullLogger()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	app := &testApp{
		services: new(mockServiceUsecase),
		doctors:  new(mockDoctorUsecase),
		patients: new(mockPatientUsecase),
		reports:  new(mockReportUsecase),
		logs:     hook,
	}

	m := metrics.NewMetrics("test")
	v := validator.NewValidator()

	router := deliveryHttp.NewRouter(
		handler.NewPatientHandler(app.patients, app.services, v, renderer, m, log),
		handler.NewDoctorHandler(app.doctors, app.services, v, renderer, m, log),
		handler.NewServiceHandler(app.services, v, renderer, m, log),
		handler.NewReportHandler(app.reports, renderer, log),
		handler.NewHealthHandler(checks...),
		middleware.NewLoggingMiddleware(log),
		middleware.NewMetricsMiddleware(m),
		middleware.NewRecoveryMiddleware(log),
		m,
	)
	app.router = router.Setup()
	return app
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (a *testApp) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

// logEntry returns the first entry logged with msg.
func (a *testApp) logEntry(msg string) *logrus.Entry {
	for _, e := range a.logs.AllEntries() {
		if e.Message == msg {
			return e
		}
	}
	return nil
}

var errDatabase = errors.New("database unavailable")

var _ usecase.ServiceUsecase = (*mockServiceUsecase)(nil)

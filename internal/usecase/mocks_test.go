package usecase

import (
	"context"
	"io"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockServiceRepo struct{ mock.Mock }

func (m *mockServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	return m.Called(ctx, service).Error(0)
}

func (m *mockServiceRepo) FindAll(ctx context.Context) ([]entity.Service, error) {
	args := m.Called(ctx)
	services, _ := args.Get(0).([]entity.Service)
	return services, args.Error(1)
}

type mockDoctorRepo struct{ mock.Mock }

func (m *mockDoctorRepo) Create(ctx context.Context, doctor *entity.Doctor) error {
	return m.Called(ctx, doctor).Error(0)
}

func (m *mockDoctorRepo) FindByMatricule(ctx context.Context, matricule string) ([]entity.Doctor, error) {
	args := m.Called(ctx, matricule)
	doctors, _ := args.Get(0).([]entity.Doctor)
	return doctors, args.Error(1)
}

type mockPatientRepo struct{ mock.Mock }

func (m *mockPatientRepo) Create(ctx context.Context, patient *entity.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

type mockReportRepo struct{ mock.Mock }

func (m *mockReportRepo) ServiceReport(ctx context.Context) ([]entity.ServiceReportRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]entity.ServiceReportRow)
	return rows, args.Error(1)
}

type mockReportCache struct{ mock.Mock }

func (m *mockReportCache) Get(ctx context.Context) (*dto.ReportResponse, string, bool) {
	args := m.Called(ctx)
	report, _ := args.Get(0).(*dto.ReportResponse)
	return report, args.String(1), args.Bool(2)
}

func (m *mockReportCache) Set(ctx context.Context, generation string, report *dto.ReportResponse) {
	m.Called(ctx, generation, report)
}

func (m *mockReportCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

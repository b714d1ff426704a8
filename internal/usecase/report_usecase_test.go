package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-admin/internal/delivery/dto"
	"hospital-admin/internal/domain/entity"
	"hospital-admin/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetServiceReportFromDatabase(t *testing.T) {
	ctx := context.Background()
	repo := new(mockReportRepo)
	cache := new(mockReportCache)

	doctors := "Dupont Marie, Martin Paul"
	repo.On("ServiceReport", ctx).Return([]entity.ServiceReportRow{
		{ServiceID: 1, Service: "Cardiologie", Doctors: &doctors},
		{ServiceID: 2, Service: "Neurologie"},
	}, nil)

	want := &dto.ReportResponse{Reports: []dto.ReportLine{
		{Service: "Cardiologie", Doctors: "Dupont Marie, Martin Paul", Patients: "Empty"},
		{Service: "Neurologie", Doctors: "Empty", Patients: "Empty"},
	}}
	cache.On("Get", ctx).Return(nil, "4", false)
	cache.On("Set", ctx, "4", want).Return()

	uc := NewReportUsecase(quietLogger(), repo, cache)
	got, err := uc.GetServiceReport(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestGetServiceReportFromCache(t *testing.T) {
	ctx := context.Background()
	repo := new(mockReportRepo)
	cache := new(mockReportCache)

	cached := &dto.ReportResponse{Reports: []dto.ReportLine{{Service: "Urgences", Doctors: "Empty", Patients: "Empty"}}}
	cache.On("Get", ctx).Return(cached, "4", true)

	uc := NewReportUsecase(quietLogger(), repo, cache)
	got, err := uc.GetServiceReport(ctx)

	require.NoError(t, err)
	assert.Same(t, cached, got)
	repo.AssertNotCalled(t, "ServiceReport", mock.Anything)
}

func TestGetServiceReportDatabaseError(t *testing.T) {
	ctx := context.Background()
	repo := new(mockReportRepo)
	cache := new(mockReportCache)

	repo.On("ServiceReport", ctx).Return(nil, errors.New("relation does not exist"))
	cache.On("Get", ctx).Return(nil, "4", false)

	uc := NewReportUsecase(quietLogger(), repo, cache)
	got, err := uc.GetServiceReport(ctx)

	assert.Nil(t, got)
	assert.Error(t, err)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetServiceReportNotCachedWhenInsertRacesRead(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cache := service.NewRedisReportCache(client, time.Hour, quietLogger())

	doctorRepo := new(mockDoctorRepo)
	doctorRepo.On("FindByMatricule", ctx, "MAT-001").Return([]entity.Doctor{}, nil)
	doctorRepo.On("Create", ctx, mock.Anything).Return(nil)
	doctorUC := NewDoctorUsecase(quietLogger(), doctorRepo, cache)

	doctors := "Martin Paul"
	reportRepo := new(mockReportRepo)
	reportRepo.On("ServiceReport", ctx).
		Run(func(mock.Arguments) {
			// Rows are already read when the doctor insert commits.
			_, err := doctorUC.CreateDoctor(ctx, validDoctorRequest())
			require.NoError(t, err)
		}).
		Return([]entity.ServiceReportRow{{ServiceID: 3, Service: "Cardiologie"}}, nil).
		Once()
	reportRepo.On("ServiceReport", ctx).
		Return([]entity.ServiceReportRow{{ServiceID: 3, Service: "Cardiologie", Doctors: &doctors}}, nil).
		Once()

	uc := NewReportUsecase(quietLogger(), reportRepo, cache)

	first, err := uc.GetServiceReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Empty", first.Reports[0].Doctors)
	assert.False(t, mr.Exists(service.ReportCacheKey))

	second, err := uc.GetServiceReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Martin Paul", second.Reports[0].Doctors)
	reportRepo.AssertExpectations(t)

	cached, _, ok := cache.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, second, cached)
}

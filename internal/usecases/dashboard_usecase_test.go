package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"check-vero.backend/internal/domain/entities"
	domainerrors "check-vero.backend/internal/domain/errors"
	"check-vero.backend/internal/usecases"
)

func newDashboardUsecaseForTest(
	userRepo *MockUserRepository,
	phoneRepo *MockPhoneRecordRepository,
	reportRepo *MockReportRepository,
	logRepo *MockVerificationLogRepository,
) *usecases.DashboardUsecase {
	return usecases.NewDashboardUsecase(userRepo, phoneRepo, reportRepo, logRepo)
}

func TestDashboardUsecase_CitizenStats(t *testing.T) {
	userRepo := new(MockUserRepository)
	reportRepo := new(MockReportRepository)
	uc := newDashboardUsecaseForTest(userRepo, new(MockPhoneRecordRepository), reportRepo, new(MockVerificationLogRepository))

	userID := uuid.New()
	userRepo.On("GetByID", context.Background(), userID).Return(&entities.User{
		ID:     userID,
		Points: 70,
	}, nil).Once()
	reportRepo.On("CountByUser", context.Background(), userID).Return(int64(4), nil).Once()
	reportRepo.On("CountHighRiskByUser", context.Background(), userID).Return(int64(2), nil).Once()

	stats, err := uc.CitizenStats(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalReports)
	assert.Equal(t, 70, stats.PointsEarned)
	assert.Equal(t, int64(2), stats.HighRiskReports)
}

func TestDashboardUsecase_CitizenStats_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newDashboardUsecaseForTest(userRepo, new(MockPhoneRecordRepository), new(MockReportRepository), new(MockVerificationLogRepository))

	userID := uuid.New()
	userRepo.On("GetByID", context.Background(), userID).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.CitizenStats(context.Background(), userID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDashboardUsecase_BusinessStats(t *testing.T) {
	phoneRepo := new(MockPhoneRecordRepository)
	reportRepo := new(MockReportRepository)
	uc := newDashboardUsecaseForTest(new(MockUserRepository), phoneRepo, reportRepo, new(MockVerificationLogRepository))

	userID := uuid.New()
	registrant := userID.String()
	numbers := []string{"+31111111111", "+31222222222"}

	phoneRepo.On("CountByRegistrant", context.Background(), registrant).Return(int64(2), nil).Once()
	phoneRepo.On("SumVerificationCounts", context.Background(), registrant).Return(int64(9), nil).Once()
	phoneRepo.On("NumbersByRegistrant", context.Background(), registrant).Return(numbers, nil).Once()
	reportRepo.On("CountByPhoneNumbers", context.Background(), numbers).Return(int64(3), nil).Once()

	stats, err := uc.BusinessStats(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.RegisteredNumbers)
	assert.Equal(t, int64(9), stats.VerificationChecks)
	assert.Equal(t, int64(3), stats.ReportsMentioning)
}

func TestDashboardUsecase_AdminStats(t *testing.T) {
	userRepo := new(MockUserRepository)
	phoneRepo := new(MockPhoneRecordRepository)
	reportRepo := new(MockReportRepository)
	logRepo := new(MockVerificationLogRepository)
	uc := newDashboardUsecaseForTest(userRepo, phoneRepo, reportRepo, logRepo)

	userRepo.On("Count", context.Background()).Return(int64(10), nil).Once()
	reportRepo.On("Count", context.Background()).Return(int64(25), nil).Once()
	phoneRepo.On("Count", context.Background()).Return(int64(7), nil).Once()
	reportRepo.On("CountHighRisk", context.Background()).Return(int64(6), nil).Once()
	logRepo.On("Count", context.Background()).Return(int64(120), nil).Once()

	stats, err := uc.AdminStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalUsers)
	assert.Equal(t, int64(25), stats.TotalReports)
	assert.Equal(t, int64(7), stats.TotalPhoneNumbers)
	assert.Equal(t, int64(6), stats.HighRiskReports)
	assert.Equal(t, int64(120), stats.TotalVerifications)
}

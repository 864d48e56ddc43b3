package usecases

import (
	"context"

	"github.com/google/uuid"
	"check-vero.backend/internal/domain/entities"
	"check-vero.backend/internal/domain/repositories"
)

// DashboardUsecase composes role-specific statistics from the stores.
// It is strictly read-only and safe to call concurrently with any write.
type DashboardUsecase struct {
	userRepo   repositories.UserRepository
	phoneRepo  repositories.PhoneRecordRepository
	reportRepo repositories.ReportRepository
	logRepo    repositories.VerificationLogRepository
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(
	userRepo repositories.UserRepository,
	phoneRepo repositories.PhoneRecordRepository,
	reportRepo repositories.ReportRepository,
	logRepo repositories.VerificationLogRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		userRepo:   userRepo,
		phoneRepo:  phoneRepo,
		reportRepo: reportRepo,
		logRepo:    logRepo,
	}
}

// CitizenStats returns a citizen's own reporting statistics
func (u *DashboardUsecase) CitizenStats(ctx context.Context, userID uuid.UUID) (*entities.CitizenStats, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalReports, err := u.reportRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	highRisk, err := u.reportRepo.CountHighRiskByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entities.CitizenStats{
		TotalReports:    totalReports,
		PointsEarned:    user.Points,
		HighRiskReports: highRisk,
	}, nil
}

// BusinessStats returns statistics over a business's registered numbers
func (u *DashboardUsecase) BusinessStats(ctx context.Context, userID uuid.UUID) (*entities.BusinessStats, error) {
	registrant := userID.String()

	registered, err := u.phoneRepo.CountByRegistrant(ctx, registrant)
	if err != nil {
		return nil, err
	}

	checks, err := u.phoneRepo.SumVerificationCounts(ctx, registrant)
	if err != nil {
		return nil, err
	}

	numbers, err := u.phoneRepo.NumbersByRegistrant(ctx, registrant)
	if err != nil {
		return nil, err
	}

	mentioning, err := u.reportRepo.CountByPhoneNumbers(ctx, numbers)
	if err != nil {
		return nil, err
	}

	return &entities.BusinessStats{
		RegisteredNumbers:  registered,
		VerificationChecks: checks,
		ReportsMentioning:  mentioning,
	}, nil
}

// AdminStats returns platform-wide counts
func (u *DashboardUsecase) AdminStats(ctx context.Context) (*entities.AdminStats, error) {
	totalUsers, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalReports, err := u.reportRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalNumbers, err := u.phoneRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	highRisk, err := u.reportRepo.CountHighRisk(ctx)
	if err != nil {
		return nil, err
	}

	totalVerifications, err := u.logRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &entities.AdminStats{
		TotalUsers:         totalUsers,
		TotalReports:       totalReports,
		TotalPhoneNumbers:  totalNumbers,
		HighRiskReports:    highRisk,
		TotalVerifications: totalVerifications,
	}, nil
}

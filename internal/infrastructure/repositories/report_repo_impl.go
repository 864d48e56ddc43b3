package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"check-vero.backend/internal/domain/entities"
	"check-vero.backend/internal/infrastructure/models"
	"check-vero.backend/pkg/utils"
)

// ReportRepository implements fraud report data operations
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create appends a fraud report. Reports are immutable once stored.
func (r *ReportRepository) Create(ctx context.Context, report *entities.FraudReport) error {
	if report.ID == uuid.Nil {
		// time-ordered IDs keep the append-only log naturally sorted
		report.ID = utils.GenerateUUIDv7()
	}
	reasons, err := json.Marshal(report.Analysis.Reasons)
	if err != nil {
		return err
	}
	m := &models.FraudReport{
		ID:              report.ID,
		UserID:          report.UserID,
		ReportType:      string(report.Type),
		PhoneNumber:     report.PhoneNumber.Ptr(),
		EmailAddress:    report.EmailAddress.Ptr(),
		Description:     report.Description,
		Screenshot:      report.Screenshot.Ptr(),
		Status:          string(report.Status),
		RiskLevel:       string(report.Analysis.RiskLevel),
		Recommendation:  report.Analysis.Recommendation,
		ConfidenceScore: report.Analysis.ConfidenceScore,
		PointsAwarded:   report.Analysis.PointsAwarded,
		Reasons:         string(reasons),
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	report.CreatedAt = m.CreatedAt
	return nil
}

// ListByUser lists a user's reports, newest first
func (r *ReportRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.FraudReport, error) {
	var reportModels []models.FraudReport
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reportModels).Error
	if err != nil {
		return nil, err
	}
	return toReportEntities(reportModels)
}

// List lists all reports newest first with pagination, returning the total count
func (r *ReportRepository) List(ctx context.Context, limit, offset int) ([]*entities.FraudReport, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.FraudReport{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := GetDB(ctx, r.db).WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var reportModels []models.FraudReport
	if err := query.Find(&reportModels).Error; err != nil {
		return nil, 0, err
	}

	reports, err := toReportEntities(reportModels)
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// CountByUser counts reports submitted by a user
func (r *ReportRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.FraudReport{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountHighRiskByUser counts a user's HIGH risk reports
func (r *ReportRepository) CountHighRiskByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.FraudReport{}).
		Where("user_id = ? AND risk_level = ?", userID, string(entities.RiskLevelHigh)).
		Count(&count).Error
	return count, err
}

// CountByPhoneNumbers counts reports mentioning any of the given numbers
func (r *ReportRepository) CountByPhoneNumbers(ctx context.Context, phoneNumbers []string) (int64, error) {
	if len(phoneNumbers) == 0 {
		return 0, nil
	}
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.FraudReport{}).
		Where("phone_number IN ?", phoneNumbers).
		Count(&count).Error
	return count, err
}

// CountHighRisk counts all HIGH risk reports
func (r *ReportRepository) CountHighRisk(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.FraudReport{}).
		Where("risk_level = ?", string(entities.RiskLevelHigh)).
		Count(&count).Error
	return count, err
}

// Count returns the total number of reports
func (r *ReportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.FraudReport{}).Count(&count).Error
	return count, err
}

func toReportEntity(m *models.FraudReport) (*entities.FraudReport, error) {
	var reasons []string
	if m.Reasons != "" {
		if err := json.Unmarshal([]byte(m.Reasons), &reasons); err != nil {
			return nil, err
		}
	}
	return &entities.FraudReport{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         entities.ReportType(m.ReportType),
		PhoneNumber:  null.StringFromPtr(m.PhoneNumber),
		EmailAddress: null.StringFromPtr(m.EmailAddress),
		Description:  m.Description,
		Screenshot:   null.StringFromPtr(m.Screenshot),
		Status:       entities.ReportStatus(m.Status),
		Analysis: entities.ReportAnalysis{
			RiskLevel:       entities.RiskLevel(m.RiskLevel),
			Recommendation:  m.Recommendation,
			ConfidenceScore: m.ConfidenceScore,
			PointsAwarded:   m.PointsAwarded,
			Reasons:         reasons,
		},
		CreatedAt: m.CreatedAt,
	}, nil
}

func toReportEntities(reportModels []models.FraudReport) ([]*entities.FraudReport, error) {
	reports := make([]*entities.FraudReport, 0, len(reportModels))
	for i := range reportModels {
		report, err := toReportEntity(&reportModels[i])
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"check-vero.backend/internal/domain/entities"
	domainerrors "check-vero.backend/internal/domain/errors"
	"check-vero.backend/internal/infrastructure/models"
	"check-vero.backend/pkg/utils"
)

// PhoneRecordRepository implements verification registry data operations
type PhoneRecordRepository struct {
	db *gorm.DB
}

// NewPhoneRecordRepository creates a new phone record repository
func NewPhoneRecordRepository(db *gorm.DB) *PhoneRecordRepository {
	return &PhoneRecordRepository{db: db}
}

// Create creates a new phone record. Phone number uniqueness is enforced by
// the unique index; a duplicate maps to ErrAlreadyExists.
func (r *PhoneRecordRepository) Create(ctx context.Context, record *entities.PhoneRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.VerifiedSince.IsZero() {
		record.VerifiedSince = time.Now().UTC()
	}
	m := &models.PhoneRecord{
		ID:                record.ID,
		PhoneNumber:       record.PhoneNumber,
		CompanyName:       record.CompanyName,
		Description:       record.Description.Ptr(),
		RegisteredBy:      record.RegisteredBy,
		Verified:          record.Verified,
		VerificationCount: record.VerificationCount,
		IsActive:          record.IsActive,
		VerifiedSince:     record.VerifiedSince,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}

	record.CreatedAt = m.CreatedAt
	record.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByNumber gets a phone record by its number
func (r *PhoneRecordRepository) GetByNumber(ctx context.Context, phoneNumber string) (*entities.PhoneRecord, error) {
	var m models.PhoneRecord
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toPhoneRecordEntity(&m), nil
}

// IncrementVerificationCount bumps the counter by exactly one in a single
// UPDATE statement and returns the record after the increment. The counter
// never decreases; the rest of the record is left untouched.
func (r *PhoneRecordRepository) IncrementVerificationCount(ctx context.Context, phoneNumber string) (*entities.PhoneRecord, error) {
	var m models.PhoneRecord
	err := GetDB(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.PhoneRecord{}).
			Where("phone_number = ?", phoneNumber).
			UpdateColumn("verification_count", gorm.Expr("verification_count + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrNotFound
		}
		return tx.Where("phone_number = ?", phoneNumber).First(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return toPhoneRecordEntity(&m), nil
}

// Deactivate marks a phone record inactive. The record stays visible to
// verification checks, flagged as inactive.
func (r *PhoneRecordRepository) Deactivate(ctx context.Context, phoneNumber string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.PhoneRecord{}).
		Where("phone_number = ?", phoneNumber).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListByRegistrant lists phone records registered by a given user
func (r *PhoneRecordRepository) ListByRegistrant(ctx context.Context, registeredBy string) ([]*entities.PhoneRecord, error) {
	var recordModels []models.PhoneRecord
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("registered_by = ?", registeredBy).
		Order("created_at DESC").
		Find(&recordModels).Error
	if err != nil {
		return nil, err
	}
	return toPhoneRecordEntities(recordModels), nil
}

// List lists all phone records
func (r *PhoneRecordRepository) List(ctx context.Context) ([]*entities.PhoneRecord, error) {
	var recordModels []models.PhoneRecord
	err := GetDB(ctx, r.db).WithContext(ctx).
		Order("created_at DESC").
		Find(&recordModels).Error
	if err != nil {
		return nil, err
	}
	return toPhoneRecordEntities(recordModels), nil
}

// NumbersByRegistrant returns only the phone numbers registered by a user
func (r *PhoneRecordRepository) NumbersByRegistrant(ctx context.Context, registeredBy string) ([]string, error) {
	var numbers []string
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.PhoneRecord{}).
		Where("registered_by = ?", registeredBy).
		Pluck("phone_number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

// CountByRegistrant counts phone records registered by a user
func (r *PhoneRecordRepository) CountByRegistrant(ctx context.Context, registeredBy string) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.PhoneRecord{}).
		Where("registered_by = ?", registeredBy).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// SumVerificationCounts sums verification counts over a registrant's records
func (r *PhoneRecordRepository) SumVerificationCounts(ctx context.Context, registeredBy string) (int64, error) {
	var sum int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.PhoneRecord{}).
		Where("registered_by = ?", registeredBy).
		Select("COALESCE(SUM(verification_count), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}

// Count returns the total number of phone records
func (r *PhoneRecordRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.PhoneRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func toPhoneRecordEntity(m *models.PhoneRecord) *entities.PhoneRecord {
	return &entities.PhoneRecord{
		ID:                m.ID,
		PhoneNumber:       m.PhoneNumber,
		CompanyName:       m.CompanyName,
		Description:       null.StringFromPtr(m.Description),
		RegisteredBy:      m.RegisteredBy,
		Verified:          m.Verified,
		VerificationCount: m.VerificationCount,
		IsActive:          m.IsActive,
		VerifiedSince:     m.VerifiedSince,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toPhoneRecordEntities(recordModels []models.PhoneRecord) []*entities.PhoneRecord {
	records := make([]*entities.PhoneRecord, 0, len(recordModels))
	for i := range recordModels {
		records = append(records, toPhoneRecordEntity(&recordModels[i]))
	}
	return records
}

// VerificationLogRepository implements the verification audit log
type VerificationLogRepository struct {
	db *gorm.DB
}

// NewVerificationLogRepository creates a new verification log repository
func NewVerificationLogRepository(db *gorm.DB) *VerificationLogRepository {
	return &VerificationLogRepository{db: db}
}

// Create appends a verification attempt to the audit log
func (r *VerificationLogRepository) Create(ctx context.Context, log *entities.VerificationLog) error {
	if log.ID == uuid.Nil {
		// time-ordered IDs keep the append-only log naturally sorted
		log.ID = utils.GenerateUUIDv7()
	}
	m := &models.VerificationLog{
		ID:          log.ID,
		PhoneNumber: log.PhoneNumber,
		Result:      string(log.Result),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	log.CreatedAt = m.CreatedAt
	return nil
}

// Count returns the total number of logged verification attempts
func (r *VerificationLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.VerificationLog{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteOlderThan removes log rows older than the cutoff and returns how
// many were deleted
func (r *VerificationLogRepository) DeleteOlderThan(ctx context.Context, cutoffDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -cutoffDays)
	result := GetDB(ctx, r.db).WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.VerificationLog{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

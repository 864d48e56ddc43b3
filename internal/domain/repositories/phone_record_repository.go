package repositories

import (
	"context"

	"check-vero.backend/internal/domain/entities"
)

// PhoneRecordRepository defines verification registry data operations
type PhoneRecordRepository interface {
	Create(ctx context.Context, record *entities.PhoneRecord) error
	GetByNumber(ctx context.Context, phoneNumber string) (*entities.PhoneRecord, error)
	// IncrementVerificationCount atomically bumps the counter by one and
	// returns the record as it stands after the increment.
	IncrementVerificationCount(ctx context.Context, phoneNumber string) (*entities.PhoneRecord, error)
	Deactivate(ctx context.Context, phoneNumber string) error
	ListByRegistrant(ctx context.Context, registeredBy string) ([]*entities.PhoneRecord, error)
	List(ctx context.Context) ([]*entities.PhoneRecord, error)
	NumbersByRegistrant(ctx context.Context, registeredBy string) ([]string, error)
	CountByRegistrant(ctx context.Context, registeredBy string) (int64, error)
	SumVerificationCounts(ctx context.Context, registeredBy string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// VerificationLogRepository defines verification audit log operations
type VerificationLogRepository interface {
	Create(ctx context.Context, log *entities.VerificationLog) error
	Count(ctx context.Context) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoffDays int) (int64, error)
}

package repositories

import (
	"context"

	"github.com/google/uuid"
	"check-vero.backend/internal/domain/entities"
)

// ReportRepository defines fraud report data operations.
// Reports are append-only; there is no update or delete.
type ReportRepository interface {
	Create(ctx context.Context, report *entities.FraudReport) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.FraudReport, error)
	List(ctx context.Context, limit, offset int) ([]*entities.FraudReport, int64, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountHighRiskByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountByPhoneNumbers(ctx context.Context, phoneNumbers []string) (int64, error)
	CountHighRisk(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

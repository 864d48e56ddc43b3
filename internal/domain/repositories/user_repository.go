package repositories

import (
	"context"

	"github.com/google/uuid"
	"check-vero.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	AddPoints(ctx context.Context, id uuid.UUID, points int) error
	Count(ctx context.Context) (int64, error)
}

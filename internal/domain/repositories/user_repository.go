package repositories

import (
	"context"
	"time"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	"github.com/google/uuid"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
}

// AuthRepository defines operations on the verification record owned by a user
type AuthRepository interface {
	Create(ctx context.Context, auth *entities.Auth) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Auth, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.VerificationStatus, verifiedAt *time.Time) error
}

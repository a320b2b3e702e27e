package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	domainerrors "github.com/darksuei/pitci-server/internal/domain/errors"
	"github.com/darksuei/pitci-server/internal/infrastructure/models"
)

// AuthRepository implements verification record data operations
type AuthRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates a new auth repository
func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// Create creates a new auth record
func (r *AuthRepository) Create(ctx context.Context, auth *entities.Auth) error {
	if auth.ID == uuid.Nil {
		auth.ID = uuid.New()
	}
	m := &models.Auth{
		ID:                 auth.ID,
		UserID:             auth.UserID,
		SessionID:          auth.SessionID.Ptr(),
		VerificationStatus: string(auth.VerificationStatus),
		VerifiedAt:         auth.VerifiedAt.Ptr(),
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	auth.CreatedAt = m.CreatedAt
	auth.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByUserID gets the auth record owned by a user
func (r *AuthRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Auth, error) {
	var m models.Auth
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Auth{
		ID:                 m.ID,
		UserID:             m.UserID,
		SessionID:          null.StringFromPtr(m.SessionID),
		VerificationStatus: entities.VerificationStatus(m.VerificationStatus),
		VerifiedAt:         null.TimeFromPtr(m.VerifiedAt),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}, nil
}

// UpdateStatus moves the verification status
func (r *AuthRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.VerificationStatus, verifiedAt *time.Time) error {
	updates := map[string]interface{}{
		"verification_status": string(status),
		"updated_at":          time.Now(),
	}
	if verifiedAt != nil {
		updates["verified_at"] = *verifiedAt
	}

	result := GetDB(ctx, r.db).Model(&models.Auth{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

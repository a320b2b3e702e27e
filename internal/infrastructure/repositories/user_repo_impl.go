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

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m := userToModel(user)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// Update updates mutable user fields
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"full_name":                 user.FullName,
		"role":                      string(user.Role),
		"notification_status":       user.NotificationStatus,
		"pitch_notification_status": user.PitchNotificationStatus,
		"post_notification_status":  user.PostNotificationStatus,
		"event_notification_status": user.EventNotificationStatus,
		"updated_at":                time.Now(),
	}
	if user.Phone.Valid {
		updates["phone"] = user.Phone.String
	}

	result := GetDB(ctx, r.db).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func userToModel(u *entities.User) *models.User {
	return &models.User{
		ID:                      u.ID,
		FullName:                u.FullName,
		Email:                   u.Email,
		Phone:                   u.Phone.Ptr(),
		PasswordHash:            u.PasswordHash,
		Role:                    string(u.Role),
		ForgotPasswordCode:      u.ForgotPasswordCode.Ptr(),
		PhoneVerificationCode:   u.PhoneVerificationCode.Ptr(),
		NotificationStatus:      u.NotificationStatus,
		PitchNotificationStatus: u.PitchNotificationStatus,
		PostNotificationStatus:  u.PostNotificationStatus,
		EventNotificationStatus: u.EventNotificationStatus,
		CreatedAt:               u.CreatedAt,
		UpdatedAt:               u.UpdatedAt,
	}
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:                      m.ID,
		FullName:                m.FullName,
		Email:                   m.Email,
		Phone:                   null.StringFromPtr(m.Phone),
		PasswordHash:            m.PasswordHash,
		Role:                    entities.Role(m.Role),
		ForgotPasswordCode:      null.StringFromPtr(m.ForgotPasswordCode),
		PhoneVerificationCode:   null.StringFromPtr(m.PhoneVerificationCode),
		NotificationStatus:      m.NotificationStatus,
		PitchNotificationStatus: m.PitchNotificationStatus,
		PostNotificationStatus:  m.PostNotificationStatus,
		EventNotificationStatus: m.EventNotificationStatus,
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}

package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	"github.com/darksuei/pitci-server/internal/domain/repositories"
)

// UserUsecase handles account-level settings
type UserUsecase struct {
	userRepo repositories.UserRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// UpdateNotificationSettings applies the flags present in the input and
// leaves the rest as they are.
func (u *UserUsecase) UpdateNotificationSettings(ctx context.Context, userID uuid.UUID, input *entities.NotificationSettingsInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.NotificationStatus != nil {
		user.NotificationStatus = *input.NotificationStatus
	}
	if input.PitchNotificationStatus != nil {
		user.PitchNotificationStatus = *input.PitchNotificationStatus
	}
	if input.PostNotificationStatus != nil {
		user.PostNotificationStatus = *input.PostNotificationStatus
	}
	if input.EventNotificationStatus != nil {
		user.EventNotificationStatus = *input.EventNotificationStatus
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

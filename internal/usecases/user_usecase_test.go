package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	domainerrors "github.com/darksuei/pitci-server/internal/domain/errors"
	"github.com/darksuei/pitci-server/internal/usecases"
)

func boolPtr(b bool) *bool { return &b }

func TestUserUsecase_UpdateNotificationSettings(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)

	userID := uuid.New()
	user := &entities.User{
		ID:                      userID,
		NotificationStatus:      true,
		PitchNotificationStatus: true,
		PostNotificationStatus:  true,
		EventNotificationStatus: true,
	}

	userRepo.On("GetByID", mock.Anything, userID).Return(user, nil).Once()
	userRepo.On("Update", mock.Anything, user).Return(nil).Once()

	updated, err := uc.UpdateNotificationSettings(context.Background(), userID, &entities.NotificationSettingsInput{
		PitchNotificationStatus: boolPtr(false),
	})
	assert.NoError(t, err)
	assert.False(t, updated.PitchNotificationStatus)
	// Flags absent from the payload stay as they were
	assert.True(t, updated.NotificationStatus)
	assert.True(t, updated.PostNotificationStatus)
	assert.True(t, updated.EventNotificationStatus)
	userRepo.AssertExpectations(t)
}

func TestUserUsecase_UpdateNotificationSettings_UserMissing(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := usecases.NewUserUsecase(userRepo)

	userID := uuid.New()
	userRepo.On("GetByID", mock.Anything, userID).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.UpdateNotificationSettings(context.Background(), userID, &entities.NotificationSettingsInput{
		NotificationStatus: boolPtr(false),
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

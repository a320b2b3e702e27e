package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	domainerrors "github.com/darksuei/pitci-server/internal/domain/errors"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{
		FullName:                "Ada Obi",
		Email:                   "ada@example.com",
		Phone:                   null.StringFrom("+2348012345678"),
		PasswordHash:            "hashed",
		Role:                    entities.RoleUser,
		NotificationStatus:      true,
		PitchNotificationStatus: true,
	}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEqual(t, uuid.Nil, user.ID)

	byEmail, err := repo.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "Ada Obi", byEmail.FullName)
	assert.True(t, byEmail.PitchNotificationStatus)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "+2348012345678", byID.Phone.String)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{
		FullName:     "Ada Obi",
		Email:        "ada@example.com",
		PasswordHash: "hashed",
		Role:         entities.RoleUser,
	}
	require.NoError(t, repo.Create(ctx, user))

	user.FullName = "Ada N. Obi"
	user.Role = entities.RoleAdmin
	user.PitchNotificationStatus = true
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada N. Obi", got.FullName)
	assert.Equal(t, entities.RoleAdmin, got.Role)
	assert.True(t, got.PitchNotificationStatus)

	err = repo.Update(ctx, &entities.User{ID: uuid.New(), FullName: "ghost"})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAuthRepository_VerificationFlow(t *testing.T) {
	db := newTestDB(t)
	createAuthTable(t, db)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	auth := &entities.Auth{
		UserID:             userID,
		VerificationStatus: entities.VerificationPending,
	}
	require.NoError(t, repo.Create(ctx, auth))

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entities.VerificationPending, got.VerificationStatus)
	assert.False(t, got.VerifiedAt.Valid)

	now := time.Now()
	require.NoError(t, repo.UpdateStatus(ctx, auth.ID, entities.VerificationVerified, &now))

	got, err = repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entities.VerificationVerified, got.VerificationStatus)
	assert.True(t, got.VerifiedAt.Valid)

	err = repo.UpdateStatus(ctx, uuid.New(), entities.VerificationExpired, nil)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

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

func TestPitchRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	createPitchTables(t, db)
	repo := NewPitchRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	pitch := &entities.Pitch{UserID: userID}

	require.NoError(t, repo.Create(ctx, pitch))
	require.NotEqual(t, uuid.Nil, pitch.ID)
	require.NotNil(t, pitch.Review, "create seeds the initial review record")
	assert.Equal(t, entities.ReviewNotSubmitted, pitch.Review.ReviewStatus)

	require.NoError(t, repo.SetUID(ctx, pitch.ID, "a1b2c3d4"))

	// ownership scope
	_, err := repo.GetByIDForUser(ctx, pitch.ID, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	got, err := repo.GetByIDForUser(ctx, pitch.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3d4", got.UID)
	require.NotNil(t, got.Review)
	assert.Equal(t, entities.ReviewNotSubmitted, got.Review.ReviewStatus)
	assert.Nil(t, got.PersonalInformation)

	byUser, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, pitch.ID, byUser.ID)
}

func TestPitchRepository_AttachStepRepointsRelation(t *testing.T) {
	db := newTestDB(t)
	createPitchTables(t, db)
	repo := NewPitchRepository(db)
	ctx := context.Background()

	pitch := &entities.Pitch{UserID: uuid.New()}
	require.NoError(t, repo.Create(ctx, pitch))

	first := &entities.PersonalInformation{
		FullName:    "Ada Obi",
		Email:       "ada@example.com",
		PhoneNumber: "+2348012345678",
		DateOfBirth: time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
		Nationality: "Nigerian",
		Ethnicity:   "Igbo",
	}
	require.NoError(t, repo.CreatePersonalInformation(ctx, first))
	require.NoError(t, repo.AttachStep(ctx, pitch.ID, entities.StepPersonalInformation, first.ID))

	got, err := repo.GetByID(ctx, pitch.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PersonalInformation)
	assert.Equal(t, first.ID, got.PersonalInformation.ID)
	assert.Equal(t, "Ada Obi", got.PersonalInformation.FullName)

	// a second update creates a fresh record and re-points the relation
	second := &entities.PersonalInformation{
		FullName:    "Ada N. Obi",
		Email:       "ada@example.com",
		PhoneNumber: "+2348012345678",
		DateOfBirth: time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
		Nationality: "Nigerian",
		Ethnicity:   "Igbo",
	}
	require.NoError(t, repo.CreatePersonalInformation(ctx, second))
	require.NoError(t, repo.AttachStep(ctx, pitch.ID, entities.StepPersonalInformation, second.ID))

	got, err = repo.GetByID(ctx, pitch.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PersonalInformation)
	assert.Equal(t, second.ID, got.PersonalInformation.ID)
	assert.Equal(t, "Ada N. Obi", got.PersonalInformation.FullName)

	// unknown pitch and unknown step
	err = repo.AttachStep(ctx, uuid.New(), entities.StepPersonalInformation, second.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	err = repo.AttachStep(ctx, pitch.ID, entities.PitchStep("bogus"), second.ID)
	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestPitchRepository_SetSubmittedOnlyOnce(t *testing.T) {
	db := newTestDB(t)
	createPitchTables(t, db)
	repo := NewPitchRepository(db)
	ctx := context.Background()

	pitch := &entities.Pitch{UserID: uuid.New()}
	require.NoError(t, repo.Create(ctx, pitch))

	require.NoError(t, repo.SetSubmitted(ctx, pitch.ID))
	err := repo.SetSubmitted(ctx, pitch.ID)
	require.ErrorIs(t, err, domainerrors.ErrAlreadySubmitted)

	got, err := repo.GetByID(ctx, pitch.ID)
	require.NoError(t, err)
	assert.True(t, got.IsSubmitted)
}

func TestPitchRepository_UpdateReview(t *testing.T) {
	db := newTestDB(t)
	createPitchTables(t, db)
	repo := NewPitchRepository(db)
	ctx := context.Background()

	pitch := &entities.Pitch{UserID: uuid.New()}
	require.NoError(t, repo.Create(ctx, pitch))

	reviewerID := uuid.New()
	decided := &entities.Review{
		ID:           pitch.Review.ID,
		ReviewStatus: entities.ReviewApproved,
		ReviewerID:   uuid.NullUUID{UUID: reviewerID, Valid: true},
		ReviewerName: null.StringFrom("Jane Admin"),
		ReviewDate:   null.TimeFrom(time.Now()),
	}
	require.NoError(t, repo.UpdateReview(ctx, decided))

	got, err := repo.GetByID(ctx, pitch.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Review)
	assert.Equal(t, entities.ReviewApproved, got.Review.ReviewStatus)
	assert.Equal(t, reviewerID, got.Review.ReviewerID.UUID)
	assert.Equal(t, "Jane Admin", got.Review.ReviewerName.String)
	assert.True(t, got.Review.ReviewDate.Valid)

	err = repo.UpdateReview(ctx, &entities.Review{ID: uuid.New(), ReviewStatus: entities.ReviewApproved})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPitchRepository_DeleteRemovesOwnedRecords(t *testing.T) {
	db := newTestDB(t)
	createPitchTables(t, db)
	repo := NewPitchRepository(db)
	ctx := context.Background()

	pitch := &entities.Pitch{UserID: uuid.New()}
	require.NoError(t, repo.Create(ctx, pitch))

	pi := &entities.PersonalInformation{
		FullName:    "Ada Obi",
		Email:       "ada@example.com",
		PhoneNumber: "+2348012345678",
		DateOfBirth: time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
		Nationality: "Nigerian",
		Ethnicity:   "Igbo",
	}
	require.NoError(t, repo.CreatePersonalInformation(ctx, pi))
	require.NoError(t, repo.AttachStep(ctx, pitch.ID, entities.StepPersonalInformation, pi.ID))

	pb := &entities.ProfessionalBackground{CurrentOccupation: "Software engineer"}
	require.NoError(t, repo.CreateProfessionalBackground(ctx, pb))
	require.NoError(t, repo.AttachStep(ctx, pitch.ID, entities.StepProfessionalBackground, pb.ID))

	got, err := repo.GetByID(ctx, pitch.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, got))

	_, err = repo.GetByID(ctx, pitch.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	var count int64
	require.NoError(t, db.Table("pitch_personal_information").Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Table("pitch_professional_background").Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Table("reviews").Count(&count).Error)
	assert.Zero(t, count)
}

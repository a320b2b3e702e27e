package repositories

import (
	"context"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	"github.com/google/uuid"
)

// PitchRepository defines pitch aggregate data operations. Lookups return the
// pitch with its section records and review loaded.
type PitchRepository interface {
	Create(ctx context.Context, pitch *entities.Pitch) error
	SetUID(ctx context.Context, id uuid.UUID, uid string) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Pitch, error)
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entities.Pitch, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Pitch, error)
	SetSubmitted(ctx context.Context, id uuid.UUID) error
	UpdateReview(ctx context.Context, review *entities.Review) error

	CreatePersonalInformation(ctx context.Context, rec *entities.PersonalInformation) error
	CreateProfessionalBackground(ctx context.Context, rec *entities.ProfessionalBackground) error
	CreateCompetitionQuestions(ctx context.Context, rec *entities.CompetitionQuestions) error
	CreateTechnicalAgreement(ctx context.Context, rec *entities.TechnicalAgreement) error

	// AttachStep points the pitch's relation for the given step at a new
	// section record. The previously attached record is orphaned.
	AttachStep(ctx context.Context, pitchID uuid.UUID, step entities.PitchStep, recordID uuid.UUID) error

	// Delete removes the pitch together with its section records and review
	// in one store operation.
	Delete(ctx context.Context, pitch *entities.Pitch) error
}

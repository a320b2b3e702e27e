package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	domainerrors "github.com/darksuei/pitci-server/internal/domain/errors"
	"github.com/darksuei/pitci-server/internal/domain/repositories"
	"github.com/darksuei/pitci-server/pkg/utils"
)

const dateOfBirthLayout = "2006-01-02"

// PitchUsecase drives the pitch lifecycle: initiation, step updates, the
// submission gate and the admin review transition.
type PitchUsecase struct {
	pitchRepo    repositories.PitchRepository
	businessRepo repositories.BusinessRepository
	userRepo     repositories.UserRepository
	alerts       *AlertService
	uow          repositories.UnitOfWork
	production   bool
}

// NewPitchUsecase creates a new pitch usecase
func NewPitchUsecase(
	pitchRepo repositories.PitchRepository,
	businessRepo repositories.BusinessRepository,
	userRepo repositories.UserRepository,
	alerts *AlertService,
	uow repositories.UnitOfWork,
	production bool,
) *PitchUsecase {
	return &PitchUsecase{
		pitchRepo:    pitchRepo,
		businessRepo: businessRepo,
		userRepo:     userRepo,
		alerts:       alerts,
		uow:          uow,
		production:   production,
	}
}

// InitiatePitch creates a draft pitch from the applicant's personal
// information. A user holds at most one pitch at a time.
func (u *PitchUsecase) InitiatePitch(ctx context.Context, userID uuid.UUID, input *entities.PersonalInformationInput) (*entities.Pitch, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, err
	}

	existing, err := u.pitchRepo.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.BadRequest("You already have a pitch in progress")
	}

	personalInformation, err := buildPersonalInformation(input)
	if err != nil {
		return nil, err
	}

	pitch := &entities.Pitch{
		UserID:              user.ID,
		IsSubmitted:         false,
		PersonalInformation: personalInformation,
		Review:              &entities.Review{ReviewStatus: entities.ReviewNotSubmitted},
	}

	// The uid derives from the generated id, hence the two-phase save.
	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.pitchRepo.CreatePersonalInformation(ctx, personalInformation); err != nil {
			return err
		}
		if err := u.pitchRepo.Create(ctx, pitch); err != nil {
			return err
		}
		pitch.UID = utils.DeriveShortUID(pitch.ID)
		return u.pitchRepo.SetUID(ctx, pitch.ID, pitch.UID)
	})
	if err != nil {
		return nil, err
	}

	pitchesInitiatedTotal.Inc()
	return pitch, nil
}

// UpdatePitchStep replaces one section of the pitch with a freshly built
// record. The previously attached record is never mutated.
func (u *PitchUsecase) UpdatePitchStep(ctx context.Context, userID, pitchID uuid.UUID, step entities.PitchStep, payload interface{}) (*entities.Pitch, error) {
	if !entities.ValidPitchStep(step) {
		return nil, domainerrors.Unprocessable("Unknown pitch step")
	}

	pitch, err := u.pitchRepo.GetByIDForUser(ctx, pitchID, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Pitch not found")
		}
		return nil, err
	}

	switch step {
	case entities.StepPersonalInformation:
		input, ok := payload.(*entities.PersonalInformationInput)
		if !ok {
			return nil, domainerrors.Unprocessable("Invalid payload for step")
		}
		rec, err := buildPersonalInformation(input)
		if err != nil {
			return nil, err
		}
		err = u.uow.Do(ctx, func(ctx context.Context) error {
			if err := u.pitchRepo.CreatePersonalInformation(ctx, rec); err != nil {
				return err
			}
			return u.pitchRepo.AttachStep(ctx, pitch.ID, step, rec.ID)
		})
		if err != nil {
			return nil, err
		}
		pitch.PersonalInformation = rec

	case entities.StepProfessionalBackground:
		input, ok := payload.(*entities.ProfessionalBackgroundInput)
		if !ok {
			return nil, domainerrors.Unprocessable("Invalid payload for step")
		}
		rec := &entities.ProfessionalBackground{
			CurrentOccupation: input.CurrentOccupation,
			LinkedinURL:       null.NewString(input.LinkedinURL, input.LinkedinURL != ""),
		}
		err = u.uow.Do(ctx, func(ctx context.Context) error {
			if err := u.pitchRepo.CreateProfessionalBackground(ctx, rec); err != nil {
				return err
			}
			return u.pitchRepo.AttachStep(ctx, pitch.ID, step, rec.ID)
		})
		if err != nil {
			return nil, err
		}
		pitch.ProfessionalBackground = rec

	case entities.StepCompetitionQuestions:
		input, ok := payload.(*entities.CompetitionQuestionsInput)
		if !ok {
			return nil, domainerrors.Unprocessable("Invalid payload for step")
		}
		if input.BusinessName != "" {
			taken, err := u.businessRepo.ExistsByName(ctx, input.BusinessName)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domainerrors.Conflict("A business with this name already exists")
			}
		}
		rec := &entities.CompetitionQuestions{
			BusinessName:                     null.NewString(input.BusinessName, input.BusinessName != ""),
			BusinessDescription:              input.BusinessDescription,
			ReasonOfInterest:                 input.ReasonOfInterest,
			InvestmentPrizeUsagePlan:         input.InvestmentPrizeUsagePlan,
			ImpactPlanWithInvestmentPrize:    input.ImpactPlanWithInvestmentPrize,
			SummaryOfWhyYouShouldParticipate: input.SummaryOfWhyYouShouldParticipate,
		}
		err = u.uow.Do(ctx, func(ctx context.Context) error {
			if err := u.pitchRepo.CreateCompetitionQuestions(ctx, rec); err != nil {
				return err
			}
			return u.pitchRepo.AttachStep(ctx, pitch.ID, step, rec.ID)
		})
		if err != nil {
			return nil, err
		}
		pitch.CompetitionQuestions = rec

	case entities.StepTechnicalAgreement:
		input, ok := payload.(*entities.TechnicalAgreementInput)
		if !ok {
			return nil, domainerrors.Unprocessable("Invalid payload for step")
		}
		rec := &entities.TechnicalAgreement{
			HaveCurrentInvestors:            derefBool(input.HaveCurrentInvestors),
			HaveCurrentInvestorsDescription: null.NewString(input.HaveCurrentInvestorsDescription, input.HaveCurrentInvestorsDescription != ""),
			HaveCurrentEmployees:            derefBool(input.HaveCurrentEmployees),
			HaveCurrentEmployeesDescription: null.NewString(input.HaveCurrentEmployeesDescription, input.HaveCurrentEmployeesDescription != ""),
			HaveDebts:                       derefBool(input.HaveDebts),
			HaveDebtsDescription:            null.NewString(input.HaveDebtsDescription, input.HaveDebtsDescription != ""),
			HasSignedTechnicalAgreement:     derefBool(input.HasSignedTechnicalAgreement),
		}
		err = u.uow.Do(ctx, func(ctx context.Context) error {
			if err := u.pitchRepo.CreateTechnicalAgreement(ctx, rec); err != nil {
				return err
			}
			return u.pitchRepo.AttachStep(ctx, pitch.ID, step, rec.ID)
		})
		if err != nil {
			return nil, err
		}
		pitch.TechnicalAgreement = rec
	}

	return pitch, nil
}

// SubmitPitch moves a draft to the pending review state and derives the
// Business record. The whole transition commits atomically.
func (u *PitchUsecase) SubmitPitch(ctx context.Context, userID, pitchID uuid.UUID) (*entities.Pitch, error) {
	pitch, err := u.pitchRepo.GetByIDForUser(ctx, pitchID, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Pitch not found")
		}
		return nil, err
	}

	if pitch.IsSubmitted {
		return nil, domainerrors.BadRequest("Pitch already submitted")
	}

	if u.production && !pitch.IsComplete() {
		return nil, domainerrors.BadRequest("Incomplete pitch data")
	}

	user, err := u.userRepo.GetByID(ctx, pitch.UserID)
	if err != nil {
		return nil, err
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.pitchRepo.SetSubmitted(ctx, pitch.ID); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadySubmitted) {
				return domainerrors.BadRequest("Pitch already submitted")
			}
			return err
		}

		if pitch.Review != nil {
			pitch.Review.ReviewStatus = entities.ReviewPending
			if err := u.pitchRepo.UpdateReview(ctx, pitch.Review); err != nil {
				return err
			}
		}

		if pitch.CompetitionQuestions != nil && pitch.CompetitionQuestions.BusinessName.Valid {
			name := pitch.CompetitionQuestions.BusinessName.String

			// Re-validated inside the transaction; the unique index is the
			// backstop for submissions racing past this check.
			taken, err := u.businessRepo.ExistsByName(ctx, name)
			if err != nil {
				return err
			}
			if taken {
				return domainerrors.Conflict("A business with this name already exists")
			}

			business := &entities.Business{
				BusinessName:        name,
				BusinessDescription: pitch.CompetitionQuestions.BusinessDescription,
				BusinessOwnerName:   null.StringFrom(user.FullName),
				BusinessOwnerEmail:  null.StringFrom(user.Email),
				BusinessOwnerPhone:  user.Phone,
				UserID:              uuid.NullUUID{UUID: user.ID, Valid: true},
				PitchID:             uuid.NullUUID{UUID: pitch.ID, Valid: true},
			}
			if err := u.businessRepo.Create(ctx, business); err != nil {
				if errors.Is(err, domainerrors.ErrAlreadyExists) {
					return domainerrors.Conflict("A business with this name already exists")
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	pitch.IsSubmitted = true
	pitchesSubmittedTotal.Inc()
	return pitch, nil
}

// GetPitch returns the pitch if it belongs to the user
func (u *PitchUsecase) GetPitch(ctx context.Context, userID, pitchID uuid.UUID) (*entities.Pitch, error) {
	pitch, err := u.pitchRepo.GetByIDForUser(ctx, pitchID, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Pitch not found")
		}
		return nil, err
	}
	return pitch, nil
}

// DeletePitch removes the pitch and everything it owns in one transaction
func (u *PitchUsecase) DeletePitch(ctx context.Context, userID, pitchID uuid.UUID) error {
	pitch, err := u.pitchRepo.GetByIDForUser(ctx, pitchID, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("Pitch not found")
		}
		return err
	}

	return u.uow.Do(ctx, func(ctx context.Context) error {
		return u.pitchRepo.Delete(ctx, pitch)
	})
}

// ReviewPitch records the admin decision. A pitch is decided exactly once:
// only a pending review accepts a decision.
func (u *PitchUsecase) ReviewPitch(ctx context.Context, reviewer *entities.User, input *entities.ReviewPitchInput) error {
	if input.ReviewStatus != entities.ReviewApproved && input.ReviewStatus != entities.ReviewDeclined {
		return domainerrors.Unprocessable("Review status must be approved or declined")
	}

	pitch, err := u.pitchRepo.GetByID(ctx, input.PitchID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("Pitch not found")
		}
		return err
	}

	// Only a pending review accepts a decision; a draft's not-submitted
	// review rejects the same way a decided one does.
	review := pitch.Review
	if review == nil || review.IsDecided() || review.ReviewStatus == entities.ReviewNotSubmitted {
		return domainerrors.AlreadyReviewed("Pitch already reviewed")
	}

	pitch.Review.ReviewStatus = input.ReviewStatus
	pitch.Review.ReviewerID = uuid.NullUUID{UUID: reviewer.ID, Valid: true}
	pitch.Review.ReviewerName = null.StringFrom(reviewer.FullName)
	pitch.Review.ReviewDate = null.TimeFrom(time.Now())

	if err := u.pitchRepo.UpdateReview(ctx, pitch.Review); err != nil {
		return err
	}

	switch input.ReviewStatus {
	case entities.ReviewApproved:
		u.alerts.PitchApproved(ctx, pitch.UserID, pitch.ShortID())
	case entities.ReviewDeclined:
		u.alerts.PitchRejected(ctx, pitch.UserID, pitch.ShortID())
	}

	pitchReviewsTotal.WithLabelValues(string(input.ReviewStatus)).Inc()
	return nil
}

func buildPersonalInformation(input *entities.PersonalInformationInput) (*entities.PersonalInformation, error) {
	dob, err := time.Parse(dateOfBirthLayout, input.DateOfBirth)
	if err != nil {
		return nil, domainerrors.Unprocessable("Invalid date of birth")
	}
	return &entities.PersonalInformation{
		FullName:                     input.FullName,
		Email:                        input.Email,
		PhoneNumber:                  input.PhoneNumber,
		DateOfBirth:                  dob,
		Nationality:                  input.Nationality,
		Ethnicity:                    input.Ethnicity,
		RequiresDisabilitySupport:    input.RequiresDisabilitySupport,
		DisabilitySupportDescription: null.NewString(input.DisabilitySupportDescription, input.DisabilitySupportDescription != ""),
	}, nil
}

func derefBool(b *bool) bool {
	return b != nil && *b
}

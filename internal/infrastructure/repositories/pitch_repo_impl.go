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

// PitchRepository implements pitch aggregate data operations
type PitchRepository struct {
	db *gorm.DB
}

// NewPitchRepository creates a new pitch repository
func NewPitchRepository(db *gorm.DB) *PitchRepository {
	return &PitchRepository{db: db}
}

func (r *PitchRepository) withRelations(ctx context.Context) *gorm.DB {
	return GetDB(ctx, r.db).
		Preload("PersonalInformation").
		Preload("ProfessionalBackground").
		Preload("CompetitionQuestions").
		Preload("TechnicalAgreement").
		Preload("Review")
}

// Create persists a new pitch together with its initial review record
func (r *PitchRepository) Create(ctx context.Context, pitch *entities.Pitch) error {
	if pitch.ID == uuid.Nil {
		pitch.ID = uuid.New()
	}

	db := GetDB(ctx, r.db)

	review := pitch.Review
	if review == nil {
		review = &entities.Review{ReviewStatus: entities.ReviewNotSubmitted}
		pitch.Review = review
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	reviewModel := reviewToModel(review)
	if err := db.Create(reviewModel).Error; err != nil {
		return err
	}

	m := &models.Pitch{
		ID:          pitch.ID,
		UID:         pitch.UID,
		UserID:      pitch.UserID,
		IsSubmitted: pitch.IsSubmitted,
		ReviewID:    &review.ID,
	}
	if pitch.PersonalInformation != nil {
		m.PersonalInformationID = &pitch.PersonalInformation.ID
	}
	if pitch.ProfessionalBackground != nil {
		m.ProfessionalBackgroundID = &pitch.ProfessionalBackground.ID
	}
	if pitch.CompetitionQuestions != nil {
		m.CompetitionQuestionsID = &pitch.CompetitionQuestions.ID
	}
	if pitch.TechnicalAgreement != nil {
		m.TechnicalAgreementID = &pitch.TechnicalAgreement.ID
	}

	if err := db.Create(m).Error; err != nil {
		return err
	}
	pitch.CreatedAt = m.CreatedAt
	pitch.UpdatedAt = m.UpdatedAt
	return nil
}

// SetUID stores the derived short uid; set once after the first persist
func (r *PitchRepository) SetUID(ctx context.Context, id uuid.UUID, uid string) error {
	result := GetDB(ctx, r.db).Model(&models.Pitch{}).Where("id = ?", id).
		Updates(map[string]interface{}{"uid": uid, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// GetByID gets a pitch with its relations
func (r *PitchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Pitch, error) {
	var m models.Pitch
	if err := r.withRelations(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return pitchToEntity(&m), nil
}

// GetByIDForUser gets a pitch only if it belongs to the given user
func (r *PitchRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entities.Pitch, error) {
	var m models.Pitch
	if err := r.withRelations(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return pitchToEntity(&m), nil
}

// GetByUserID gets the user's outstanding pitch
func (r *PitchRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Pitch, error) {
	var m models.Pitch
	if err := r.withRelations(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return pitchToEntity(&m), nil
}

// SetSubmitted flips is_submitted; only a draft row is affected so a second
// call reports not found
func (r *PitchRepository) SetSubmitted(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Model(&models.Pitch{}).
		Where("id = ? AND is_submitted = ?", id, false).
		Updates(map[string]interface{}{"is_submitted": true, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrAlreadySubmitted
	}
	return nil
}

// UpdateReview writes the decision fields of a review record
func (r *PitchRepository) UpdateReview(ctx context.Context, review *entities.Review) error {
	updates := map[string]interface{}{
		"review_status": string(review.ReviewStatus),
		"updated_at":    time.Now(),
	}
	if review.ReviewerID.Valid {
		updates["reviewer_id"] = review.ReviewerID.UUID
	}
	if review.ReviewerName.Valid {
		updates["reviewer_name"] = review.ReviewerName.String
	}
	if review.ReviewDate.Valid {
		updates["review_date"] = review.ReviewDate.Time
	}

	result := GetDB(ctx, r.db).Model(&models.Review{}).Where("id = ?", review.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CreatePersonalInformation persists a standalone personal information record
func (r *PitchRepository) CreatePersonalInformation(ctx context.Context, rec *entities.PersonalInformation) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	m := personalInformationToModel(rec)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	rec.CreatedAt = m.CreatedAt
	rec.UpdatedAt = m.UpdatedAt
	return nil
}

// CreateProfessionalBackground persists a standalone professional background record
func (r *PitchRepository) CreateProfessionalBackground(ctx context.Context, rec *entities.ProfessionalBackground) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	m := &models.ProfessionalBackground{
		ID:                rec.ID,
		CurrentOccupation: rec.CurrentOccupation,
		LinkedinURL:       rec.LinkedinURL.Ptr(),
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	rec.CreatedAt = m.CreatedAt
	rec.UpdatedAt = m.UpdatedAt
	return nil
}

// CreateCompetitionQuestions persists a standalone competition questions record
func (r *PitchRepository) CreateCompetitionQuestions(ctx context.Context, rec *entities.CompetitionQuestions) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	m := &models.CompetitionQuestions{
		ID:                               rec.ID,
		BusinessName:                     rec.BusinessName.Ptr(),
		BusinessDescription:              rec.BusinessDescription,
		ReasonOfInterest:                 rec.ReasonOfInterest,
		InvestmentPrizeUsagePlan:         rec.InvestmentPrizeUsagePlan,
		ImpactPlanWithInvestmentPrize:    rec.ImpactPlanWithInvestmentPrize,
		SummaryOfWhyYouShouldParticipate: rec.SummaryOfWhyYouShouldParticipate,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	rec.CreatedAt = m.CreatedAt
	rec.UpdatedAt = m.UpdatedAt
	return nil
}

// CreateTechnicalAgreement persists a standalone technical agreement record
func (r *PitchRepository) CreateTechnicalAgreement(ctx context.Context, rec *entities.TechnicalAgreement) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	m := &models.TechnicalAgreement{
		ID:                              rec.ID,
		HaveCurrentInvestors:            rec.HaveCurrentInvestors,
		HaveCurrentInvestorsDescription: rec.HaveCurrentInvestorsDescription.Ptr(),
		HaveCurrentEmployees:            rec.HaveCurrentEmployees,
		HaveCurrentEmployeesDescription: rec.HaveCurrentEmployeesDescription.Ptr(),
		HaveDebts:                       rec.HaveDebts,
		HaveDebtsDescription:            rec.HaveDebtsDescription.Ptr(),
		HasSignedTechnicalAgreement:     rec.HasSignedTechnicalAgreement,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	rec.CreatedAt = m.CreatedAt
	rec.UpdatedAt = m.UpdatedAt
	return nil
}

// AttachStep re-points the pitch relation for the given step at a new record
func (r *PitchRepository) AttachStep(ctx context.Context, pitchID uuid.UUID, step entities.PitchStep, recordID uuid.UUID) error {
	var column string
	switch step {
	case entities.StepPersonalInformation:
		column = "personal_information_id"
	case entities.StepProfessionalBackground:
		column = "professional_background_id"
	case entities.StepCompetitionQuestions:
		column = "competition_questions_id"
	case entities.StepTechnicalAgreement:
		column = "technical_agreement_id"
	default:
		return domainerrors.ErrInvalidInput
	}

	result := GetDB(ctx, r.db).Model(&models.Pitch{}).Where("id = ?", pitchID).
		Updates(map[string]interface{}{column: recordID, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes the pitch and every record it owns. Callers run this inside
// a UnitOfWork so the cascade is atomic.
func (r *PitchRepository) Delete(ctx context.Context, pitch *entities.Pitch) error {
	db := GetDB(ctx, r.db)

	if err := db.Delete(&models.Pitch{}, "id = ?", pitch.ID).Error; err != nil {
		return err
	}
	if pitch.PersonalInformation != nil {
		if err := db.Delete(&models.PersonalInformation{}, "id = ?", pitch.PersonalInformation.ID).Error; err != nil {
			return err
		}
	}
	if pitch.ProfessionalBackground != nil {
		if err := db.Delete(&models.ProfessionalBackground{}, "id = ?", pitch.ProfessionalBackground.ID).Error; err != nil {
			return err
		}
	}
	if pitch.CompetitionQuestions != nil {
		if err := db.Delete(&models.CompetitionQuestions{}, "id = ?", pitch.CompetitionQuestions.ID).Error; err != nil {
			return err
		}
	}
	if pitch.TechnicalAgreement != nil {
		if err := db.Delete(&models.TechnicalAgreement{}, "id = ?", pitch.TechnicalAgreement.ID).Error; err != nil {
			return err
		}
	}
	if pitch.Review != nil {
		if err := db.Delete(&models.Review{}, "id = ?", pitch.Review.ID).Error; err != nil {
			return err
		}
	}
	return nil
}

func reviewToModel(r *entities.Review) *models.Review {
	m := &models.Review{
		ID:           r.ID,
		ReviewStatus: string(r.ReviewStatus),
		ReviewerName: r.ReviewerName.Ptr(),
		ReviewDate:   r.ReviewDate.Ptr(),
	}
	if r.ReviewerID.Valid {
		id := r.ReviewerID.UUID
		m.ReviewerID = &id
	}
	return m
}

func reviewToEntity(m *models.Review) *entities.Review {
	e := &entities.Review{
		ID:           m.ID,
		ReviewStatus: entities.ReviewStatus(m.ReviewStatus),
		ReviewerName: null.StringFromPtr(m.ReviewerName),
		ReviewDate:   null.TimeFromPtr(m.ReviewDate),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.ReviewerID != nil {
		e.ReviewerID = uuid.NullUUID{UUID: *m.ReviewerID, Valid: true}
	}
	return e
}

func personalInformationToModel(rec *entities.PersonalInformation) *models.PersonalInformation {
	return &models.PersonalInformation{
		ID:                           rec.ID,
		FullName:                     rec.FullName,
		Email:                        rec.Email,
		PhoneNumber:                  rec.PhoneNumber,
		DateOfBirth:                  rec.DateOfBirth,
		Nationality:                  rec.Nationality,
		Ethnicity:                    rec.Ethnicity,
		RequiresDisabilitySupport:    rec.RequiresDisabilitySupport,
		DisabilitySupportDescription: rec.DisabilitySupportDescription.Ptr(),
	}
}

func pitchToEntity(m *models.Pitch) *entities.Pitch {
	p := &entities.Pitch{
		ID:          m.ID,
		UID:         m.UID,
		UserID:      m.UserID,
		IsSubmitted: m.IsSubmitted,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.PersonalInformation != nil {
		p.PersonalInformation = &entities.PersonalInformation{
			ID:                           m.PersonalInformation.ID,
			FullName:                     m.PersonalInformation.FullName,
			Email:                        m.PersonalInformation.Email,
			PhoneNumber:                  m.PersonalInformation.PhoneNumber,
			DateOfBirth:                  m.PersonalInformation.DateOfBirth,
			Nationality:                  m.PersonalInformation.Nationality,
			Ethnicity:                    m.PersonalInformation.Ethnicity,
			RequiresDisabilitySupport:    m.PersonalInformation.RequiresDisabilitySupport,
			DisabilitySupportDescription: null.StringFromPtr(m.PersonalInformation.DisabilitySupportDescription),
			CreatedAt:                    m.PersonalInformation.CreatedAt,
			UpdatedAt:                    m.PersonalInformation.UpdatedAt,
		}
	}
	if m.ProfessionalBackground != nil {
		p.ProfessionalBackground = &entities.ProfessionalBackground{
			ID:                m.ProfessionalBackground.ID,
			CurrentOccupation: m.ProfessionalBackground.CurrentOccupation,
			LinkedinURL:       null.StringFromPtr(m.ProfessionalBackground.LinkedinURL),
			CreatedAt:         m.ProfessionalBackground.CreatedAt,
			UpdatedAt:         m.ProfessionalBackground.UpdatedAt,
		}
	}
	if m.CompetitionQuestions != nil {
		p.CompetitionQuestions = &entities.CompetitionQuestions{
			ID:                               m.CompetitionQuestions.ID,
			BusinessName:                     null.StringFromPtr(m.CompetitionQuestions.BusinessName),
			BusinessDescription:              m.CompetitionQuestions.BusinessDescription,
			ReasonOfInterest:                 m.CompetitionQuestions.ReasonOfInterest,
			InvestmentPrizeUsagePlan:         m.CompetitionQuestions.InvestmentPrizeUsagePlan,
			ImpactPlanWithInvestmentPrize:    m.CompetitionQuestions.ImpactPlanWithInvestmentPrize,
			SummaryOfWhyYouShouldParticipate: m.CompetitionQuestions.SummaryOfWhyYouShouldParticipate,
			CreatedAt:                        m.CompetitionQuestions.CreatedAt,
			UpdatedAt:                        m.CompetitionQuestions.UpdatedAt,
		}
	}
	if m.TechnicalAgreement != nil {
		p.TechnicalAgreement = &entities.TechnicalAgreement{
			ID:                              m.TechnicalAgreement.ID,
			HaveCurrentInvestors:            m.TechnicalAgreement.HaveCurrentInvestors,
			HaveCurrentInvestorsDescription: null.StringFromPtr(m.TechnicalAgreement.HaveCurrentInvestorsDescription),
			HaveCurrentEmployees:            m.TechnicalAgreement.HaveCurrentEmployees,
			HaveCurrentEmployeesDescription: null.StringFromPtr(m.TechnicalAgreement.HaveCurrentEmployeesDescription),
			HaveDebts:                       m.TechnicalAgreement.HaveDebts,
			HaveDebtsDescription:            null.StringFromPtr(m.TechnicalAgreement.HaveDebtsDescription),
			HasSignedTechnicalAgreement:     m.TechnicalAgreement.HasSignedTechnicalAgreement,
			CreatedAt:                       m.TechnicalAgreement.CreatedAt,
			UpdatedAt:                       m.TechnicalAgreement.UpdatedAt,
		}
	}
	if m.Review != nil {
		p.Review = reviewToEntity(m.Review)
	}
	return p
}

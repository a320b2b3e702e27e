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

// MeetingRepository implements meeting schedule data operations
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

func (r *MeetingRepository) withRelations(ctx context.Context) *gorm.DB {
	return GetDB(ctx, r.db).
		Preload("Proposer").
		Preload("Recipient").
		Preload("Review")
}

// Create persists a new meeting together with its pending review record
func (r *MeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if meeting.ID == uuid.Nil {
		meeting.ID = uuid.New()
	}

	db := GetDB(ctx, r.db)

	review := meeting.Review
	if review == nil {
		review = &entities.Review{ReviewStatus: entities.ReviewPending}
		meeting.Review = review
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	if err := db.Create(reviewToModel(review)).Error; err != nil {
		return err
	}

	m := &models.Meeting{
		ID:                   meeting.ID,
		Description:          meeting.Description,
		ProposerID:           meeting.ProposerID,
		RecipientID:          meeting.RecipientID,
		ProposedMeetingStart: meeting.ProposedMeetingStart,
		ProposedMeetingEnd:   meeting.ProposedMeetingEnd,
		MeetingLink:          meeting.MeetingLink.Ptr(),
		ReviewID:             &review.ID,
	}
	if err := db.Create(m).Error; err != nil {
		return err
	}
	meeting.CreatedAt = m.CreatedAt
	meeting.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a meeting with its relations
func (r *MeetingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var m models.Meeting
	if err := r.withRelations(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return meetingToEntity(&m), nil
}

// ListForUser lists meetings the user proposed or that target a business the
// user owns, newest first
func (r *MeetingRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	owned := GetDB(ctx, r.db).Model(&models.Business{}).
		Select("id").Where("user_id = ?", userID)

	var meetingModels []models.Meeting
	if err := r.withRelations(ctx).
		Where("proposer_id = ? OR recipient_id IN (?)", userID, owned).
		Order("created_at DESC").
		Find(&meetingModels).Error; err != nil {
		return nil, err
	}
	return meetingsToEntities(meetingModels), nil
}

// ListAll lists every meeting in the system, newest first
func (r *MeetingRepository) ListAll(ctx context.Context) ([]*entities.Meeting, error) {
	var meetingModels []models.Meeting
	if err := r.withRelations(ctx).
		Order("created_at DESC").
		Find(&meetingModels).Error; err != nil {
		return nil, err
	}
	return meetingsToEntities(meetingModels), nil
}

// SetLink stores the meeting link an admin supplied with the decision
func (r *MeetingRepository) SetLink(ctx context.Context, id uuid.UUID, link string) error {
	result := GetDB(ctx, r.db).Model(&models.Meeting{}).Where("id = ?", id).
		Updates(map[string]interface{}{"meeting_link": link, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateReview writes the decision fields of a meeting's review record
func (r *MeetingRepository) UpdateReview(ctx context.Context, review *entities.Review) error {
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

func meetingToEntity(m *models.Meeting) *entities.Meeting {
	e := &entities.Meeting{
		ID:                   m.ID,
		Description:          m.Description,
		ProposerID:           m.ProposerID,
		RecipientID:          m.RecipientID,
		ProposedMeetingStart: m.ProposedMeetingStart,
		ProposedMeetingEnd:   m.ProposedMeetingEnd,
		MeetingLink:          null.StringFromPtr(m.MeetingLink),
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
	if m.Proposer != nil {
		e.Proposer = userToEntity(m.Proposer)
	}
	if m.Recipient != nil {
		e.Recipient = businessToEntity(m.Recipient)
	}
	if m.Review != nil {
		e.Review = reviewToEntity(m.Review)
	}
	return e
}

func meetingsToEntities(ms []models.Meeting) []*entities.Meeting {
	meetings := make([]*entities.Meeting, 0, len(ms))
	for i := range ms {
		meetings = append(meetings, meetingToEntity(&ms[i]))
	}
	return meetings
}

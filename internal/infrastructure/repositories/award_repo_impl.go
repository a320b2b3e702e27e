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

// AwardRepository implements award category data operations
type AwardRepository struct {
	db *gorm.DB
}

// NewAwardRepository creates a new award repository
func NewAwardRepository(db *gorm.DB) *AwardRepository {
	return &AwardRepository{db: db}
}

// Create creates a new award
func (r *AwardRepository) Create(ctx context.Context, award *entities.Award) error {
	if award.ID == uuid.Nil {
		award.ID = uuid.New()
	}
	m := &models.Award{
		ID:          award.ID,
		Title:       award.Title,
		Description: award.Description,
		Status:      string(award.Status),
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	award.CreatedAt = m.CreatedAt
	award.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an award by ID
func (r *AwardRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Award, error) {
	var m models.Award
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return awardToEntity(&m), nil
}

// GetByIDAndStatus gets an award only if it is in the given window
func (r *AwardRepository) GetByIDAndStatus(ctx context.Context, id uuid.UUID, status entities.AwardStatus) (*entities.Award, error) {
	var m models.Award
	if err := GetDB(ctx, r.db).Where("id = ? AND status = ?", id, string(status)).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return awardToEntity(&m), nil
}

// UpdateStatus assigns the award window
func (r *AwardRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AwardStatus) error {
	result := GetDB(ctx, r.db).Model(&models.Award{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes an award; nominees and votes fall to the FK cascade
func (r *AwardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.Award{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func awardToEntity(m *models.Award) *entities.Award {
	return &entities.Award{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      entities.AwardStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// AwardNomineeRepository implements nominee data operations
type AwardNomineeRepository struct {
	db *gorm.DB
}

// NewAwardNomineeRepository creates a new nominee repository
func NewAwardNomineeRepository(db *gorm.DB) *AwardNomineeRepository {
	return &AwardNomineeRepository{db: db}
}

// Create creates a new nominee. The unique (award_id, nominee_id) index maps
// duplicate entries to ErrAlreadyExists.
func (r *AwardNomineeRepository) Create(ctx context.Context, nominee *entities.AwardNominee) error {
	if nominee.ID == uuid.Nil {
		nominee.ID = uuid.New()
	}
	m := &models.AwardNominee{
		ID:          nominee.ID,
		AwardID:     nominee.AwardID,
		NomineeID:   nominee.Nominee.ID,
		NomineeType: string(nominee.Nominee.Type),
		NominatorID: nominee.NominatorID,
		Reason:      nominee.Reason.Ptr(),
		VotesCount:  nominee.VotesCount,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	nominee.CreatedAt = m.CreatedAt
	nominee.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByNomineeRef looks up by the polymorphic nominee id under an award
func (r *AwardNomineeRepository) GetByNomineeRef(ctx context.Context, awardID, nomineeID uuid.UUID) (*entities.AwardNominee, error) {
	var m models.AwardNominee
	if err := GetDB(ctx, r.db).
		Where("award_id = ? AND nominee_id = ?", awardID, nomineeID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return nomineeToEntity(&m), nil
}

// GetUnderAward resolves id as either the nominee row id or the polymorphic
// nominee id, whichever matches under the award
func (r *AwardNomineeRepository) GetUnderAward(ctx context.Context, awardID, id uuid.UUID) (*entities.AwardNominee, error) {
	var m models.AwardNominee
	if err := GetDB(ctx, r.db).
		Where("award_id = ? AND (id = ? OR nominee_id = ?)", awardID, id, id).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return nomineeToEntity(&m), nil
}

// IncrementVotes bumps votes_count with a store-side expression so concurrent
// votes cannot lose updates
func (r *AwardNomineeRepository) IncrementVotes(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Model(&models.AwardNominee{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"votes_count": gorm.Expr("votes_count + 1"),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func nomineeToEntity(m *models.AwardNominee) *entities.AwardNominee {
	return &entities.AwardNominee{
		ID:      m.ID,
		AwardID: m.AwardID,
		Nominee: entities.NomineeRef{
			Type: entities.NomineeType(m.NomineeType),
			ID:   m.NomineeID,
		},
		NominatorID: m.NominatorID,
		Reason:      null.StringFromPtr(m.Reason),
		VotesCount:  m.VotesCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// VoteRepository implements vote data operations
type VoteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new vote repository
func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// Create creates a new vote. The unique (user_id, award_id) index closes the
// concurrent double-vote race; violations map to ErrAlreadyVoted.
func (r *VoteRepository) Create(ctx context.Context, vote *entities.Vote) error {
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	m := &models.Vote{
		ID:        vote.ID,
		UserID:    vote.UserID,
		AwardID:   vote.AwardID,
		NomineeID: vote.NomineeID,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return domainerrors.ErrAlreadyVoted
		}
		return err
	}
	vote.CreatedAt = m.CreatedAt
	vote.UpdatedAt = m.UpdatedAt
	return nil
}

// HasUserVotedInAward reports whether the user already holds a vote under the award
func (r *VoteRepository) HasUserVotedInAward(ctx context.Context, userID, awardID uuid.UUID) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&models.Vote{}).
		Where("user_id = ? AND award_id = ?", userID, awardID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByNominee counts the vote rows referencing a nominee
func (r *VoteRepository) CountByNominee(ctx context.Context, nomineeID uuid.UUID) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&models.Vote{}).
		Where("nominee_id = ?", nomineeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

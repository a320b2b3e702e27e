package repositories

import (
	"context"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	"github.com/google/uuid"
)

// AwardRepository defines award category data operations
type AwardRepository interface {
	Create(ctx context.Context, award *entities.Award) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Award, error)
	GetByIDAndStatus(ctx context.Context, id uuid.UUID, status entities.AwardStatus) (*entities.Award, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AwardStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AwardNomineeRepository defines nominee data operations
type AwardNomineeRepository interface {
	Create(ctx context.Context, nominee *entities.AwardNominee) error
	// GetByNomineeRef looks up by the polymorphic nominee id under an award.
	GetByNomineeRef(ctx context.Context, awardID, nomineeID uuid.UUID) (*entities.AwardNominee, error)
	// GetUnderAward resolves id as either the nominee row id or the
	// polymorphic nominee id, whichever matches under the award.
	GetUnderAward(ctx context.Context, awardID, id uuid.UUID) (*entities.AwardNominee, error)
	// IncrementVotes bumps votes_count atomically in the store.
	IncrementVotes(ctx context.Context, id uuid.UUID) error
}

// VoteRepository defines vote data operations
type VoteRepository interface {
	Create(ctx context.Context, vote *entities.Vote) error
	HasUserVotedInAward(ctx context.Context, userID, awardID uuid.UUID) (bool, error)
	CountByNominee(ctx context.Context, nomineeID uuid.UUID) (int64, error)
}

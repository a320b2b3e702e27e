package repositories

import (
	"context"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	"github.com/google/uuid"
)

// MeetingRepository defines meeting schedule data operations
type MeetingRepository interface {
	Create(ctx context.Context, meeting *entities.Meeting) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)
	// ListForUser returns meetings the user proposed plus meetings addressed
	// to a business the user owns.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error)
	ListAll(ctx context.Context) ([]*entities.Meeting, error)
	SetLink(ctx context.Context, id uuid.UUID, link string) error
	UpdateReview(ctx context.Context, review *entities.Review) error
}

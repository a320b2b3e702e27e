package repositories

import (
	"context"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	"github.com/google/uuid"
)

// AlertRepository defines in-app alert data operations
type AlertRepository interface {
	Create(ctx context.Context, alert *entities.Alert) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Alert, error)
	MarkRead(ctx context.Context, userID, alertID uuid.UUID) error
}

package repositories

import (
	"context"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	"github.com/google/uuid"
)

// BusinessRepository defines business data operations
type BusinessRepository interface {
	Create(ctx context.Context, business *entities.Business) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Business, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

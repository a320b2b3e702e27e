package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	domainerrors "github.com/darksuei/pitci-server/internal/domain/errors"
	"github.com/darksuei/pitci-server/internal/infrastructure/models"
)

// AlertRepository implements in-app alert data operations
type AlertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// Create creates a new alert row
func (r *AlertRepository) Create(ctx context.Context, alert *entities.Alert) error {
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	m := &models.Alert{
		ID:      alert.ID,
		UserID:  alert.UserID,
		Title:   alert.Title,
		Message: alert.Message,
		IsRead:  alert.IsRead,
	}
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	alert.CreatedAt = m.CreatedAt
	alert.UpdatedAt = m.UpdatedAt
	return nil
}

// ListByUser lists a user's alerts, newest first
func (r *AlertRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Alert, error) {
	var alertModels []models.Alert
	if err := GetDB(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&alertModels).Error; err != nil {
		return nil, err
	}

	alerts := make([]*entities.Alert, 0, len(alertModels))
	for i := range alertModels {
		m := &alertModels[i]
		alerts = append(alerts, &entities.Alert{
			ID:        m.ID,
			UserID:    m.UserID,
			Title:     m.Title,
			Message:   m.Message,
			IsRead:    m.IsRead,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return alerts, nil
}

// MarkRead flags an alert as read; scoped to the owner
func (r *AlertRepository) MarkRead(ctx context.Context, userID, alertID uuid.UUID) error {
	result := GetDB(ctx, r.db).Model(&models.Alert{}).
		Where("id = ? AND user_id = ?", alertID, userID).
		Updates(map[string]interface{}{"is_read": true, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

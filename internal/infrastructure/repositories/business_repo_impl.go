package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	domainerrors "github.com/darksuei/pitci-server/internal/domain/errors"
	"github.com/darksuei/pitci-server/internal/infrastructure/models"
)

// BusinessRepository implements business data operations
type BusinessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// Create creates a new business. A unique index on business_name backstops
// the name check, so duplicate-key failures map to ErrAlreadyExists.
func (r *BusinessRepository) Create(ctx context.Context, business *entities.Business) error {
	if business.ID == uuid.Nil {
		business.ID = uuid.New()
	}
	m := &models.Business{
		ID:                  business.ID,
		BusinessName:        business.BusinessName,
		BusinessDescription: business.BusinessDescription,
		BusinessOwnerName:   business.BusinessOwnerName.Ptr(),
		BusinessOwnerEmail:  business.BusinessOwnerEmail.Ptr(),
		BusinessOwnerPhone:  business.BusinessOwnerPhone.Ptr(),
		Website:             business.Website.Ptr(),
		Logo:                business.Logo.Ptr(),
	}
	if business.UserID.Valid {
		id := business.UserID.UUID
		m.UserID = &id
	}
	if business.PitchID.Valid {
		id := business.PitchID.UUID
		m.PitchID = &id
	}

	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	business.CreatedAt = m.CreatedAt
	business.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a business by ID
func (r *BusinessRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Business, error) {
	var m models.Business
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return businessToEntity(&m), nil
}

// ExistsByName reports whether a business with the exact name exists
func (r *BusinessRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&models.Business{}).
		Where("business_name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func businessToEntity(m *models.Business) *entities.Business {
	e := &entities.Business{
		ID:                  m.ID,
		BusinessName:        m.BusinessName,
		BusinessDescription: m.BusinessDescription,
		BusinessOwnerName:   null.StringFromPtr(m.BusinessOwnerName),
		BusinessOwnerEmail:  null.StringFromPtr(m.BusinessOwnerEmail),
		BusinessOwnerPhone:  null.StringFromPtr(m.BusinessOwnerPhone),
		Website:             null.StringFromPtr(m.Website),
		Logo:                null.StringFromPtr(m.Logo),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if m.UserID != nil {
		e.UserID = uuid.NullUUID{UUID: *m.UserID, Valid: true}
	}
	if m.PitchID != nil {
		e.PitchID = uuid.NullUUID{UUID: *m.PitchID, Valid: true}
	}
	return e
}

// isUniqueViolation matches driver-level unique constraint errors that GORM
// does not translate when its error translator is disabled
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type Auth struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	SessionID          *string   `gorm:"type:varchar(255)"`
	VerificationStatus string    `gorm:"type:varchar(50);not null;default:'unverified'"`
	VerifiedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Auth) TableName() string {
	return "auth"
}

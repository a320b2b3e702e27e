package models

import (
	"time"

	"github.com/google/uuid"
)

type Business struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BusinessName        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	BusinessDescription string     `gorm:"type:text;not null"`
	BusinessOwnerName   *string    `gorm:"type:varchar(255)"`
	BusinessOwnerEmail  *string    `gorm:"type:varchar(255)"`
	BusinessOwnerPhone  *string    `gorm:"type:varchar(50)"`
	Website             *string    `gorm:"type:varchar(255)"`
	Logo                *string    `gorm:"type:varchar(255)"`
	UserID              *uuid.UUID `gorm:"type:uuid;index"`
	PitchID             *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (Business) TableName() string {
	return "businesses"
}

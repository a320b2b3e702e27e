package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName                string    `gorm:"type:varchar(255);not null"`
	Email                   string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone                   *string   `gorm:"type:varchar(50);uniqueIndex"`
	PasswordHash            string    `gorm:"type:varchar(255);not null"`
	Role                    string    `gorm:"type:varchar(50);not null;default:'user'"`
	ForgotPasswordCode      *string   `gorm:"type:varchar(10)"`
	PhoneVerificationCode   *string   `gorm:"type:varchar(10)"`
	NotificationStatus      bool      `gorm:"not null;default:false"`
	PitchNotificationStatus bool      `gorm:"not null;default:false"`
	PostNotificationStatus  bool      `gorm:"not null;default:false"`
	EventNotificationStatus bool      `gorm:"not null;default:false"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (User) TableName() string {
	return "users"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Description          string     `gorm:"type:text;not null"`
	ProposerID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	ProposedMeetingStart time.Time  `gorm:"not null"`
	ProposedMeetingEnd   time.Time  `gorm:"not null"`
	MeetingLink          *string    `gorm:"type:varchar(255)"`
	ReviewID             *uuid.UUID `gorm:"type:uuid"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Proposer  *User     `gorm:"foreignKey:ProposerID"`
	Recipient *Business `gorm:"foreignKey:RecipientID"`
	Review    *Review   `gorm:"foreignKey:ReviewID"`
}

func (Meeting) TableName() string {
	return "meetings"
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type Award struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(50);not null;default:'not-started'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Award) TableName() string {
	return "awards"
}

type AwardNominee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AwardID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_award_nominee,priority:1"`
	NomineeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_award_nominee,priority:2"`
	NomineeType string    `gorm:"type:varchar(50);not null"`
	NominatorID uuid.UUID `gorm:"type:uuid;not null"`
	Reason      *string   `gorm:"type:text"`
	VotesCount  int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Award *Award `gorm:"foreignKey:AwardID;constraint:OnDelete:CASCADE"`
}

func (AwardNominee) TableName() string {
	return "award_nominees"
}

type Vote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_award_vote,priority:1"`
	AwardID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_award_vote,priority:2"`
	NomineeID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Nominee *AwardNominee `gorm:"foreignKey:NomineeID;constraint:OnDelete:CASCADE"`
}

func (Vote) TableName() string {
	return "votes"
}

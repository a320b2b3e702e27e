package models

import (
	"time"

	"github.com/google/uuid"
)

type PersonalInformation struct {
	ID                           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName                     string    `gorm:"type:varchar(255);not null"`
	Email                        string    `gorm:"type:varchar(255);not null"`
	PhoneNumber                  string    `gorm:"type:varchar(50);not null"`
	DateOfBirth                  time.Time `gorm:"not null"`
	Nationality                  string    `gorm:"type:varchar(100);not null"`
	Ethnicity                    string    `gorm:"type:varchar(100);not null"`
	RequiresDisabilitySupport    bool      `gorm:"not null;default:false"`
	DisabilitySupportDescription *string   `gorm:"type:text"`
	CreatedAt                    time.Time
	UpdatedAt                    time.Time
}

func (PersonalInformation) TableName() string {
	return "pitch_personal_information"
}

type ProfessionalBackground struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CurrentOccupation string    `gorm:"type:varchar(255);not null"`
	LinkedinURL       *string   `gorm:"type:varchar(255)"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ProfessionalBackground) TableName() string {
	return "pitch_professional_background"
}

type CompetitionQuestions struct {
	ID                               uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessName                     *string   `gorm:"type:varchar(255)"`
	BusinessDescription              string    `gorm:"type:text;not null"`
	ReasonOfInterest                 string    `gorm:"type:text;not null"`
	InvestmentPrizeUsagePlan         string    `gorm:"type:text;not null"`
	ImpactPlanWithInvestmentPrize    string    `gorm:"type:text;not null"`
	SummaryOfWhyYouShouldParticipate string    `gorm:"type:text;not null"`
	CreatedAt                        time.Time
	UpdatedAt                        time.Time
}

func (CompetitionQuestions) TableName() string {
	return "pitch_competition_questions"
}

type TechnicalAgreement struct {
	ID                              uuid.UUID `gorm:"type:uuid;primaryKey"`
	HaveCurrentInvestors            bool      `gorm:"not null"`
	HaveCurrentInvestorsDescription *string   `gorm:"type:text"`
	HaveCurrentEmployees            bool      `gorm:"not null"`
	HaveCurrentEmployeesDescription *string   `gorm:"type:text"`
	HaveDebts                       bool      `gorm:"not null"`
	HaveDebtsDescription            *string   `gorm:"type:text"`
	HasSignedTechnicalAgreement     bool      `gorm:"not null"`
	CreatedAt                       time.Time
	UpdatedAt                       time.Time
}

func (TechnicalAgreement) TableName() string {
	return "pitch_technical_agreement"
}

type Review struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ReviewStatus string     `gorm:"type:varchar(50);not null;default:'not-submitted'"`
	ReviewerID   *uuid.UUID `gorm:"type:uuid"`
	ReviewerName *string    `gorm:"type:varchar(255)"`
	ReviewDate   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Review) TableName() string {
	return "reviews"
}

type Pitch struct {
	ID                       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UID                      string     `gorm:"type:varchar(16);index"`
	UserID                   uuid.UUID  `gorm:"type:uuid;not null;index"`
	IsSubmitted              bool       `gorm:"not null;default:false"`
	PersonalInformationID    *uuid.UUID `gorm:"type:uuid"`
	ProfessionalBackgroundID *uuid.UUID `gorm:"type:uuid"`
	CompetitionQuestionsID   *uuid.UUID `gorm:"type:uuid"`
	TechnicalAgreementID     *uuid.UUID `gorm:"type:uuid"`
	ReviewID                 *uuid.UUID `gorm:"type:uuid"`
	CreatedAt                time.Time
	UpdatedAt                time.Time

	PersonalInformation    *PersonalInformation    `gorm:"foreignKey:PersonalInformationID"`
	ProfessionalBackground *ProfessionalBackground `gorm:"foreignKey:ProfessionalBackgroundID"`
	CompetitionQuestions   *CompetitionQuestions   `gorm:"foreignKey:CompetitionQuestionsID"`
	TechnicalAgreement     *TechnicalAgreement     `gorm:"foreignKey:TechnicalAgreementID"`
	Review                 *Review                 `gorm:"foreignKey:ReviewID"`
}

func (Pitch) TableName() string {
	return "pitches"
}

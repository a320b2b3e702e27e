package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PitchStep identifies one of the four independently editable pitch sections
type PitchStep string

const (
	StepPersonalInformation    PitchStep = "personal_information"
	StepProfessionalBackground PitchStep = "professional_background"
	StepCompetitionQuestions   PitchStep = "competition_questions"
	StepTechnicalAgreement     PitchStep = "technical_agreement"
)

// ValidPitchStep reports whether s names a known pitch step
func ValidPitchStep(s PitchStep) bool {
	switch s {
	case StepPersonalInformation, StepProfessionalBackground,
		StepCompetitionQuestions, StepTechnicalAgreement:
		return true
	}
	return false
}

// PersonalInformation is the applicant identity section of a pitch
type PersonalInformation struct {
	ID                           uuid.UUID   `json:"id"`
	FullName                     string      `json:"fullName"`
	Email                        string      `json:"email"`
	PhoneNumber                  string      `json:"phoneNumber"`
	DateOfBirth                  time.Time   `json:"dateOfBirth"`
	Nationality                  string      `json:"nationality"`
	Ethnicity                    string      `json:"ethnicity"`
	RequiresDisabilitySupport    bool        `json:"requiresDisabilitySupport"`
	DisabilitySupportDescription null.String `json:"disabilitySupportDescription,omitempty"`
	CreatedAt                    time.Time   `json:"createdAt"`
	UpdatedAt                    time.Time   `json:"updatedAt"`
}

// ProfessionalBackground is the career section of a pitch
type ProfessionalBackground struct {
	ID                uuid.UUID   `json:"id"`
	CurrentOccupation string      `json:"currentOccupation"`
	LinkedinURL       null.String `json:"linkedinUrl,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// CompetitionQuestions is the business proposal section of a pitch
type CompetitionQuestions struct {
	ID                               uuid.UUID   `json:"id"`
	BusinessName                     null.String `json:"businessName,omitempty"`
	BusinessDescription              string      `json:"businessDescription"`
	ReasonOfInterest                 string      `json:"reasonOfInterest"`
	InvestmentPrizeUsagePlan         string      `json:"investmentPrizeUsagePlan"`
	ImpactPlanWithInvestmentPrize    string      `json:"impactPlanWithInvestmentPrize"`
	SummaryOfWhyYouShouldParticipate string      `json:"summaryOfWhyYouShouldParticipate"`
	CreatedAt                        time.Time   `json:"createdAt"`
	UpdatedAt                        time.Time   `json:"updatedAt"`
}

// TechnicalAgreement is the disclosures section of a pitch
type TechnicalAgreement struct {
	ID                              uuid.UUID   `json:"id"`
	HaveCurrentInvestors            bool        `json:"haveCurrentInvestors"`
	HaveCurrentInvestorsDescription null.String `json:"haveCurrentInvestorsDescription,omitempty"`
	HaveCurrentEmployees            bool        `json:"haveCurrentEmployees"`
	HaveCurrentEmployeesDescription null.String `json:"haveCurrentEmployeesDescription,omitempty"`
	HaveDebts                       bool        `json:"haveDebts"`
	HaveDebtsDescription            null.String `json:"haveDebtsDescription,omitempty"`
	HasSignedTechnicalAgreement     bool        `json:"hasSignedTechnicalAgreement"`
	CreatedAt                       time.Time   `json:"createdAt"`
	UpdatedAt                       time.Time   `json:"updatedAt"`
}

// Pitch is an applicant's competition entry. The four section records are
// created standalone and re-pointed on update; an update never mutates a
// previously attached instance.
type Pitch struct {
	ID                     uuid.UUID               `json:"id"`
	UID                    string                  `json:"uid"`
	UserID                 uuid.UUID               `json:"userId"`
	IsSubmitted            bool                    `json:"isSubmitted"`
	PersonalInformation    *PersonalInformation    `json:"personalInformation,omitempty"`
	ProfessionalBackground *ProfessionalBackground `json:"professionalBackground,omitempty"`
	CompetitionQuestions   *CompetitionQuestions   `json:"competitionQuestions,omitempty"`
	TechnicalAgreement     *TechnicalAgreement     `json:"technicalAgreement,omitempty"`
	Review                 *Review                 `json:"review,omitempty"`
	CreatedAt              time.Time               `json:"createdAt"`
	UpdatedAt              time.Time               `json:"updatedAt"`
}

// IsComplete reports whether all four sections are attached
func (p *Pitch) IsComplete() bool {
	return p.PersonalInformation != nil &&
		p.ProfessionalBackground != nil &&
		p.CompetitionQuestions != nil &&
		p.TechnicalAgreement != nil
}

// ShortID returns the human-readable pitch reference used in alerts
func (p *Pitch) ShortID() string {
	if p.UID != "" {
		return p.UID
	}
	id := p.ID.String()
	for i := 0; i < len(id); i++ {
		if id[i] == '-' {
			return id[:i]
		}
	}
	return id
}

// PersonalInformationInput is the payload for the personal information step
// and for pitch initiation
type PersonalInformationInput struct {
	FullName                     string `json:"fullName" binding:"required"`
	Email                        string `json:"email" binding:"required,email"`
	PhoneNumber                  string `json:"phoneNumber" binding:"required"`
	DateOfBirth                  string `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	Nationality                  string `json:"nationality" binding:"required"`
	Ethnicity                    string `json:"ethnicity" binding:"required"`
	RequiresDisabilitySupport    bool   `json:"requiresDisabilitySupport"`
	DisabilitySupportDescription string `json:"disabilitySupportDescription,omitempty"`
}

// ProfessionalBackgroundInput is the payload for the professional background step
type ProfessionalBackgroundInput struct {
	CurrentOccupation string `json:"currentOccupation" binding:"required"`
	LinkedinURL       string `json:"linkedinUrl,omitempty" binding:"omitempty,url"`
}

// CompetitionQuestionsInput is the payload for the competition questions step
type CompetitionQuestionsInput struct {
	BusinessName                     string `json:"businessName,omitempty"`
	BusinessDescription              string `json:"businessDescription" binding:"required"`
	ReasonOfInterest                 string `json:"reasonOfInterest" binding:"required"`
	InvestmentPrizeUsagePlan         string `json:"investmentPrizeUsagePlan" binding:"required"`
	ImpactPlanWithInvestmentPrize    string `json:"impactPlanWithInvestmentPrize" binding:"required"`
	SummaryOfWhyYouShouldParticipate string `json:"summaryOfWhyYouShouldParticipate" binding:"required"`
}

// TechnicalAgreementInput is the payload for the technical agreement step
type TechnicalAgreementInput struct {
	HaveCurrentInvestors            *bool  `json:"haveCurrentInvestors" binding:"required"`
	HaveCurrentInvestorsDescription string `json:"haveCurrentInvestorsDescription,omitempty"`
	HaveCurrentEmployees            *bool  `json:"haveCurrentEmployees" binding:"required"`
	HaveCurrentEmployeesDescription string `json:"haveCurrentEmployeesDescription,omitempty"`
	HaveDebts                       *bool  `json:"haveDebts" binding:"required"`
	HaveDebtsDescription            string `json:"haveDebtsDescription,omitempty"`
	HasSignedTechnicalAgreement     *bool  `json:"hasSignedTechnicalAgreement" binding:"required"`
}

// ReviewPitchInput is the admin decision payload
type ReviewPitchInput struct {
	PitchID      uuid.UUID    `json:"pitchId" binding:"required"`
	ReviewStatus ReviewStatus `json:"reviewStatus" binding:"required,oneof=approved declined"`
}

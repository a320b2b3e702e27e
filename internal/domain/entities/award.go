package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AwardStatus represents an award's lifecycle window
type AwardStatus string

const (
	AwardNotStarted      AwardStatus = "not-started"
	AwardNominationsOpen AwardStatus = "nominations-open"
	AwardVotingOpen      AwardStatus = "voting-open"
	AwardClosed          AwardStatus = "closed"
)

// ValidAwardStatus reports whether s names a known award status
func ValidAwardStatus(s AwardStatus) bool {
	switch s {
	case AwardNotStarted, AwardNominationsOpen, AwardVotingOpen, AwardClosed:
		return true
	}
	return false
}

// NomineeType tags the kind of entity a nomination points at
type NomineeType string

const (
	NomineeUser     NomineeType = "user"
	NomineeBusiness NomineeType = "business"
	NomineePitch    NomineeType = "pitch"
)

// NomineeRef is the tagged reference to the nominated entity. Exactly one
// entity is referenced; the type selects which table the id resolves against.
type NomineeRef struct {
	Type NomineeType `json:"nomineeType"`
	ID   uuid.UUID   `json:"nomineeId"`
}

// Valid reports whether the reference carries a known type and a non-nil id
func (r NomineeRef) Valid() bool {
	if r.ID == uuid.Nil {
		return false
	}
	switch r.Type {
	case NomineeUser, NomineeBusiness, NomineePitch:
		return true
	}
	return false
}

// Award represents an award category
type Award struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      AwardStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// AwardNominee is one entry under an award category
type AwardNominee struct {
	ID          uuid.UUID   `json:"id"`
	AwardID     uuid.UUID   `json:"awardId"`
	Nominee     NomineeRef  `json:"nominee"`
	NominatorID uuid.UUID   `json:"nominatorId"`
	Reason      null.String `json:"reason,omitempty"`
	VotesCount  int         `json:"votesCount"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Vote links a user to a nominee. AwardID is denormalized from the nominee so
// the one-vote-per-award rule can be a unique constraint.
type Vote struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	NomineeID uuid.UUID `json:"nomineeId"`
	AwardID   uuid.UUID `json:"awardId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateAwardInput is the admin payload to create an award
type CreateAwardInput struct {
	Title       string `json:"title" binding:"required,min=2,max=255"`
	Description string `json:"description" binding:"required"`
}

// AwardStatusInput is the admin payload to move an award window
type AwardStatusInput struct {
	AwardID uuid.UUID   `json:"awardId" binding:"required"`
	Status  AwardStatus `json:"status" binding:"required"`
}

// NominateInput is the payload to enter a nominee under an award
type NominateInput struct {
	AwardID     uuid.UUID   `json:"awardId" binding:"required"`
	NomineeID   uuid.UUID   `json:"nomineeId" binding:"required"`
	NomineeType NomineeType `json:"nomineeType,omitempty"`
	Reason      string      `json:"reason,omitempty"`
}

// VoteInput is the payload to cast a vote
type VoteInput struct {
	AwardID   uuid.UUID `json:"awardId" binding:"required"`
	NomineeID uuid.UUID `json:"nomineeId" binding:"required"`
}

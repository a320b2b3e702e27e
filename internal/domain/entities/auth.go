package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationStatus represents the state of an account's email verification
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationPending    VerificationStatus = "pending"
	VerificationVerified   VerificationStatus = "verified"
	VerificationExpired    VerificationStatus = "expired"
)

// Auth holds the verification record owned by a user
type Auth struct {
	ID                 uuid.UUID          `json:"id"`
	UserID             uuid.UUID          `json:"userId"`
	SessionID          null.String        `json:"-"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	VerifiedAt         null.Time          `json:"verifiedAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Business represents a company record, either created by an admin or derived
// from a submitted pitch
type Business struct {
	ID                  uuid.UUID     `json:"id"`
	BusinessName        string        `json:"businessName"`
	BusinessDescription string        `json:"businessDescription"`
	BusinessOwnerName   null.String   `json:"businessOwnerName,omitempty"`
	BusinessOwnerEmail  null.String   `json:"businessOwnerEmail,omitempty"`
	BusinessOwnerPhone  null.String   `json:"businessOwnerPhone,omitempty"`
	Website             null.String   `json:"website,omitempty"`
	Logo                null.String   `json:"logo,omitempty"`
	UserID              uuid.NullUUID `json:"userId,omitempty"`
	PitchID             uuid.NullUUID `json:"pitchId,omitempty"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

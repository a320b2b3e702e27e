package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Meeting is a user's proposal to meet a business, pending an admin decision.
// The meeting link is only set once an admin approves the schedule.
type Meeting struct {
	ID                   uuid.UUID   `json:"id"`
	Description          string      `json:"description"`
	ProposerID           uuid.UUID   `json:"proposerId"`
	RecipientID          uuid.UUID   `json:"recipientId"`
	ProposedMeetingStart time.Time   `json:"proposedMeetingStart"`
	ProposedMeetingEnd   time.Time   `json:"proposedMeetingEnd"`
	MeetingLink          null.String `json:"meetingLink,omitempty"`
	Proposer             *User       `json:"proposer,omitempty"`
	Recipient            *Business   `json:"recipient,omitempty"`
	Review               *Review     `json:"review,omitempty"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

// ScheduleMeetingInput is the payload to propose a meeting with a business
type ScheduleMeetingInput struct {
	Description          string    `json:"description" binding:"required"`
	RecipientID          uuid.UUID `json:"recipientId" binding:"required"`
	ProposedMeetingStart time.Time `json:"proposedMeetingStart" binding:"required"`
	ProposedMeetingEnd   time.Time `json:"proposedMeetingEnd" binding:"required"`
}

// ReviewMeetingInput is the admin decision payload for a proposed meeting
type ReviewMeetingInput struct {
	MeetingID    uuid.UUID    `json:"meetingId" binding:"required"`
	ReviewStatus ReviewStatus `json:"reviewStatus" binding:"required,oneof=approved declined"`
	MeetingLink  string       `json:"meetingLink,omitempty" binding:"omitempty,url"`
}

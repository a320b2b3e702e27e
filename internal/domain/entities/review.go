package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ReviewStatus represents the admin decision state of a submission
type ReviewStatus string

const (
	ReviewNotSubmitted ReviewStatus = "not-submitted"
	ReviewPending      ReviewStatus = "pending"
	ReviewApproved     ReviewStatus = "approved"
	ReviewDeclined     ReviewStatus = "declined"
)

// Review tracks the admin decision attached to a pitch
type Review struct {
	ID           uuid.UUID     `json:"id"`
	ReviewStatus ReviewStatus  `json:"reviewStatus"`
	ReviewerID   uuid.NullUUID `json:"reviewerId,omitempty"`
	ReviewerName null.String   `json:"reviewerName,omitempty"`
	ReviewDate   null.Time     `json:"reviewDate,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// IsDecided reports whether a terminal decision has been recorded
func (r *Review) IsDecided() bool {
	return r.ReviewStatus == ReviewApproved || r.ReviewStatus == ReviewDeclined
}

package entities

import (
	"time"

	"github.com/google/uuid"
)

// Alert is an in-app notification row shown to a user, written regardless of
// whether the outbound notification delivery succeeds
type Alert struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

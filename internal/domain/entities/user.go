package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Role represents a user's access level
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// User represents a platform account
type User struct {
	ID                      uuid.UUID   `json:"id"`
	FullName                string      `json:"fullName"`
	Email                   string      `json:"email"`
	Phone                   null.String `json:"phone,omitempty"`
	PasswordHash            string      `json:"-"`
	Role                    Role        `json:"role"`
	ForgotPasswordCode      null.String `json:"-"`
	PhoneVerificationCode   null.String `json:"-"`
	NotificationStatus      bool        `json:"notificationStatus"`
	PitchNotificationStatus bool        `json:"pitchNotificationStatus"`
	PostNotificationStatus  bool        `json:"postNotificationStatus"`
	EventNotificationStatus bool        `json:"eventNotificationStatus"`
	CreatedAt               time.Time   `json:"createdAt"`
	UpdatedAt               time.Time   `json:"updatedAt"`
}

// IsAdmin reports whether the user holds an administrative role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	FullName string `json:"fullName" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginInput represents input for login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyCodeInput represents input for email verification
type VerifyCodeInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// NotificationSettingsInput carries partial updates to the notification
// preference flags; nil fields are left untouched
type NotificationSettingsInput struct {
	NotificationStatus      *bool `json:"notificationStatus,omitempty"`
	PitchNotificationStatus *bool `json:"pitchNotificationStatus,omitempty"`
	PostNotificationStatus  *bool `json:"postNotificationStatus,omitempty"`
	EventNotificationStatus *bool `json:"eventNotificationStatus,omitempty"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/darksuei/pitci-server/pkg/logger"
)

// NotificationKind identifies an outbound notification template
type NotificationKind string

const (
	NotificationEmailVerification NotificationKind = "email-verification"
	NotificationPitchApproved     NotificationKind = "pitch-approved"
	NotificationPitchRejected     NotificationKind = "pitch-rejected"
	NotificationAwardNomination   NotificationKind = "award-nomination"
)

// NotificationGateway delivers notifications to a user's external channels.
// Delivery is best-effort: callers log failures and never propagate them.
type NotificationGateway interface {
	Send(ctx context.Context, kind NotificationKind, recipientID uuid.UUID, payload map[string]string) error
}

// LogNotificationGateway is a gateway that only records deliveries in the log.
// It stands in for a real provider in development and tests.
type LogNotificationGateway struct{}

// NewLogNotificationGateway creates a new logging gateway
func NewLogNotificationGateway() *LogNotificationGateway {
	return &LogNotificationGateway{}
}

// Send logs the notification instead of delivering it
func (g *LogNotificationGateway) Send(ctx context.Context, kind NotificationKind, recipientID uuid.UUID, payload map[string]string) error {
	logger.Info(ctx, "notification dispatched",
		zap.String("kind", string(kind)),
		zap.String("recipient_id", recipientID.String()),
		zap.Any("payload", payload),
	)
	return nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	"github.com/darksuei/pitci-server/internal/domain/repositories"
	"github.com/darksuei/pitci-server/pkg/logger"
)

// Alert titles shown in the in-app feed
const (
	alertTitlePitchApproved   = "Pitch Approved"
	alertTitlePitchRejected   = "Pitch Rejected"
	alertTitleAwardNomination = "Award Nomination"
)

// AlertService writes in-app alert rows and forwards them to the notification
// gateway. Gateway failures are logged and never surfaced to the caller.
type AlertService struct {
	alertRepo repositories.AlertRepository
	userRepo  repositories.UserRepository
	gateway   NotificationGateway
}

// NewAlertService creates a new alert service
func NewAlertService(
	alertRepo repositories.AlertRepository,
	userRepo repositories.UserRepository,
	gateway NotificationGateway,
) *AlertService {
	return &AlertService{
		alertRepo: alertRepo,
		userRepo:  userRepo,
		gateway:   gateway,
	}
}

// PitchApproved alerts the pitch owner about an approval, gated by the
// owner's pitch notification preference
func (s *AlertService) PitchApproved(ctx context.Context, userID uuid.UUID, pitchRef string) {
	message := fmt.Sprintf("Your pitch: #%s has been approved!", pitchRef)
	s.deliver(ctx, userID, alertTitlePitchApproved, message, NotificationPitchApproved, pitchPreference)
}

// PitchRejected alerts the pitch owner about a rejection, gated by the
// owner's pitch notification preference
func (s *AlertService) PitchRejected(ctx context.Context, userID uuid.UUID, pitchRef string) {
	message := fmt.Sprintf("Your pitch: #%s has been rejected!", pitchRef)
	s.deliver(ctx, userID, alertTitlePitchRejected, message, NotificationPitchRejected, pitchPreference)
}

// AwardNomination alerts a user that they were nominated for an award, gated
// by the general notification preference
func (s *AlertService) AwardNomination(ctx context.Context, userID uuid.UUID, awardTitle string) {
	message := fmt.Sprintf("You have been nominated for the award - %s!", awardTitle)
	s.deliver(ctx, userID, alertTitleAwardNomination, message, NotificationAwardNomination, generalPreference)
}

// ListAlerts lists a user's in-app alerts
func (s *AlertService) ListAlerts(ctx context.Context, userID uuid.UUID) ([]*entities.Alert, error) {
	return s.alertRepo.ListByUser(ctx, userID)
}

// MarkAlertRead marks one of the user's alerts as read
func (s *AlertService) MarkAlertRead(ctx context.Context, userID, alertID uuid.UUID) error {
	return s.alertRepo.MarkRead(ctx, userID, alertID)
}

type preferenceSelector func(u *entities.User) bool

func pitchPreference(u *entities.User) bool   { return u.PitchNotificationStatus }
func generalPreference(u *entities.User) bool { return u.NotificationStatus }

func (s *AlertService) deliver(ctx context.Context, userID uuid.UUID, title, message string, kind NotificationKind, enabled preferenceSelector) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "alert skipped: user lookup failed",
			zap.String("user_id", userID.String()), zap.Error(err))
		return
	}
	if !enabled(user) {
		return
	}

	alert := &entities.Alert{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	if err := s.alertRepo.Create(ctx, alert); err != nil {
		logger.Error(ctx, "failed to write alert",
			zap.String("user_id", userID.String()), zap.Error(err))
	} else {
		alertsCreatedTotal.Inc()
	}

	// The in-app row stands regardless of delivery outcome.
	if err := s.gateway.Send(ctx, kind, userID, map[string]string{"message": message}); err != nil {
		logger.Warn(ctx, "notification delivery failed",
			zap.String("kind", string(kind)),
			zap.String("user_id", userID.String()), zap.Error(err))
	}
}

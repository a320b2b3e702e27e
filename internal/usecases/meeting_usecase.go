package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	domainerrors "github.com/darksuei/pitci-server/internal/domain/errors"
	"github.com/darksuei/pitci-server/internal/domain/repositories"
)

// MeetingUsecase drives meeting schedules from proposal through the admin
// decision
type MeetingUsecase struct {
	meetingRepo  repositories.MeetingRepository
	userRepo     repositories.UserRepository
	businessRepo repositories.BusinessRepository
	uow          repositories.UnitOfWork
}

// NewMeetingUsecase creates a new meeting usecase
func NewMeetingUsecase(
	meetingRepo repositories.MeetingRepository,
	userRepo repositories.UserRepository,
	businessRepo repositories.BusinessRepository,
	uow repositories.UnitOfWork,
) *MeetingUsecase {
	return &MeetingUsecase{
		meetingRepo:  meetingRepo,
		userRepo:     userRepo,
		businessRepo: businessRepo,
		uow:          uow,
	}
}

// ScheduleMeeting proposes a meeting between the caller and a business. The
// proposal starts with a pending review awaiting an admin decision.
func (u *MeetingUsecase) ScheduleMeeting(ctx context.Context, proposerID uuid.UUID, input *entities.ScheduleMeetingInput) (*entities.Meeting, error) {
	if !input.ProposedMeetingEnd.After(input.ProposedMeetingStart) {
		return nil, domainerrors.Unprocessable("Meeting must end after it starts")
	}

	proposer, err := u.userRepo.GetByID(ctx, proposerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Proposer or recipient not found")
		}
		return nil, err
	}

	recipient, err := u.businessRepo.GetByID(ctx, input.RecipientID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Proposer or recipient not found")
		}
		return nil, err
	}

	meeting := &entities.Meeting{
		Description:          input.Description,
		ProposerID:           proposer.ID,
		RecipientID:          recipient.ID,
		ProposedMeetingStart: input.ProposedMeetingStart,
		ProposedMeetingEnd:   input.ProposedMeetingEnd,
		Review:               &entities.Review{ReviewStatus: entities.ReviewPending},
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		return u.meetingRepo.Create(ctx, meeting)
	})
	if err != nil {
		return nil, err
	}

	meeting.Proposer = proposer
	meeting.Recipient = recipient
	meetingsScheduledTotal.Inc()
	return meeting, nil
}

// ListMeetings returns the meetings the user proposed or receives through a
// business they own
func (u *MeetingUsecase) ListMeetings(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	return u.meetingRepo.ListForUser(ctx, userID)
}

// ListAllMeetings returns every meeting schedule in the system
func (u *MeetingUsecase) ListAllMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	return u.meetingRepo.ListAll(ctx)
}

// ReviewMeeting records the admin decision on a proposed meeting. Only a
// pending schedule accepts a decision; the link and the review fields commit
// together.
func (u *MeetingUsecase) ReviewMeeting(ctx context.Context, reviewer *entities.User, input *entities.ReviewMeetingInput) (*entities.Meeting, error) {
	meeting, err := u.meetingRepo.GetByID(ctx, input.MeetingID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Meeting not found")
		}
		return nil, err
	}

	if meeting.Review == nil || meeting.Review.IsDecided() {
		return nil, domainerrors.AlreadyReviewed("Meeting already reviewed")
	}

	meeting.Review.ReviewStatus = input.ReviewStatus
	meeting.Review.ReviewerID = uuid.NullUUID{UUID: reviewer.ID, Valid: true}
	meeting.Review.ReviewerName = null.StringFrom(reviewer.FullName)
	meeting.Review.ReviewDate = null.TimeFrom(time.Now())

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if input.MeetingLink != "" {
			if err := u.meetingRepo.SetLink(ctx, meeting.ID, input.MeetingLink); err != nil {
				return err
			}
			meeting.MeetingLink = null.StringFrom(input.MeetingLink)
		}
		return u.meetingRepo.UpdateReview(ctx, meeting.Review)
	})
	if err != nil {
		return nil, err
	}

	meetingReviewsTotal.WithLabelValues(string(input.ReviewStatus)).Inc()
	return meeting, nil
}

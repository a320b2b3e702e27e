package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	domainerrors "github.com/darksuei/pitci-server/internal/domain/errors"
	"github.com/darksuei/pitci-server/internal/usecases"
)

type meetingMocks struct {
	meetingRepo  *MockMeetingRepository
	userRepo     *MockUserRepository
	businessRepo *MockBusinessRepository
	uow          *MockUnitOfWork
}

func newMeetingUsecase() (*usecases.MeetingUsecase, *meetingMocks) {
	m := &meetingMocks{
		meetingRepo:  new(MockMeetingRepository),
		userRepo:     new(MockUserRepository),
		businessRepo: new(MockBusinessRepository),
		uow:          new(MockUnitOfWork),
	}
	uc := usecases.NewMeetingUsecase(m.meetingRepo, m.userRepo, m.businessRepo, m.uow)
	return uc, m
}

func validScheduleMeetingInput(recipientID uuid.UUID) *entities.ScheduleMeetingInput {
	start := time.Now().Add(48 * time.Hour)
	return &entities.ScheduleMeetingInput{
		Description:          "Walk through the growth plan",
		RecipientID:          recipientID,
		ProposedMeetingStart: start,
		ProposedMeetingEnd:   start.Add(time.Hour),
	}
}

func TestMeetingUsecase_ScheduleMeeting(t *testing.T) {
	uc, m := newMeetingUsecase()

	proposerID := uuid.New()
	proposer := &entities.User{ID: proposerID, FullName: "Ada Lovelace"}
	business := &entities.Business{ID: uuid.New(), BusinessName: "Lattice Labs"}

	m.userRepo.On("GetByID", mock.Anything, proposerID).Return(proposer, nil).Once()
	m.businessRepo.On("GetByID", mock.Anything, business.ID).Return(business, nil).Once()
	m.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	m.meetingRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	meeting, err := uc.ScheduleMeeting(context.Background(), proposerID, validScheduleMeetingInput(business.ID))
	assert.NoError(t, err)
	assert.NotNil(t, meeting)
	assert.Equal(t, entities.ReviewPending, meeting.Review.ReviewStatus)
	assert.False(t, meeting.MeetingLink.Valid)
	assert.Equal(t, proposer, meeting.Proposer)
	assert.Equal(t, business, meeting.Recipient)
	m.meetingRepo.AssertExpectations(t)
}

func TestMeetingUsecase_ScheduleMeeting_RecipientMissing(t *testing.T) {
	uc, m := newMeetingUsecase()

	proposerID := uuid.New()
	recipientID := uuid.New()

	m.userRepo.On("GetByID", mock.Anything, proposerID).Return(&entities.User{ID: proposerID}, nil).Once()
	m.businessRepo.On("GetByID", mock.Anything, recipientID).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.ScheduleMeeting(context.Background(), proposerID, validScheduleMeetingInput(recipientID))
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	m.meetingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMeetingUsecase_ScheduleMeeting_EndBeforeStart(t *testing.T) {
	uc, m := newMeetingUsecase()

	input := validScheduleMeetingInput(uuid.New())
	input.ProposedMeetingEnd = input.ProposedMeetingStart.Add(-time.Hour)

	_, err := uc.ScheduleMeeting(context.Background(), uuid.New(), input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	m.meetingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMeetingUsecase_ReviewMeeting_Approve(t *testing.T) {
	uc, m := newMeetingUsecase()

	reviewer := &entities.User{ID: uuid.New(), FullName: "Grace Hopper", Role: entities.RoleAdmin}
	meeting := &entities.Meeting{
		ID:     uuid.New(),
		Review: &entities.Review{ID: uuid.New(), ReviewStatus: entities.ReviewPending},
	}
	link := "https://meet.example.com/abc"

	m.meetingRepo.On("GetByID", mock.Anything, meeting.ID).Return(meeting, nil).Once()
	m.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	m.meetingRepo.On("SetLink", mock.Anything, meeting.ID, link).Return(nil).Once()
	m.meetingRepo.On("UpdateReview", mock.Anything, meeting.Review).Return(nil).Once()

	reviewed, err := uc.ReviewMeeting(context.Background(), reviewer, &entities.ReviewMeetingInput{
		MeetingID:    meeting.ID,
		ReviewStatus: entities.ReviewApproved,
		MeetingLink:  link,
	})
	assert.NoError(t, err)
	assert.Equal(t, entities.ReviewApproved, reviewed.Review.ReviewStatus)
	assert.Equal(t, reviewer.ID, reviewed.Review.ReviewerID.UUID)
	assert.Equal(t, "Grace Hopper", reviewed.Review.ReviewerName.String)
	assert.True(t, reviewed.Review.ReviewDate.Valid)
	assert.Equal(t, link, reviewed.MeetingLink.String)
	m.meetingRepo.AssertExpectations(t)
}

func TestMeetingUsecase_ReviewMeeting_DeclineWithoutLink(t *testing.T) {
	uc, m := newMeetingUsecase()

	reviewer := &entities.User{ID: uuid.New(), FullName: "Grace Hopper", Role: entities.RoleAdmin}
	meeting := &entities.Meeting{
		ID:     uuid.New(),
		Review: &entities.Review{ID: uuid.New(), ReviewStatus: entities.ReviewPending},
	}

	m.meetingRepo.On("GetByID", mock.Anything, meeting.ID).Return(meeting, nil).Once()
	m.uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	m.meetingRepo.On("UpdateReview", mock.Anything, meeting.Review).Return(nil).Once()

	reviewed, err := uc.ReviewMeeting(context.Background(), reviewer, &entities.ReviewMeetingInput{
		MeetingID:    meeting.ID,
		ReviewStatus: entities.ReviewDeclined,
	})
	assert.NoError(t, err)
	assert.Equal(t, entities.ReviewDeclined, reviewed.Review.ReviewStatus)
	assert.False(t, reviewed.MeetingLink.Valid)
	m.meetingRepo.AssertNotCalled(t, "SetLink", mock.Anything, mock.Anything, mock.Anything)
}

func TestMeetingUsecase_ReviewMeeting_AlreadyReviewed(t *testing.T) {
	uc, m := newMeetingUsecase()

	reviewer := &entities.User{ID: uuid.New(), Role: entities.RoleAdmin}
	meeting := &entities.Meeting{
		ID:     uuid.New(),
		Review: &entities.Review{ID: uuid.New(), ReviewStatus: entities.ReviewApproved},
	}

	m.meetingRepo.On("GetByID", mock.Anything, meeting.ID).Return(meeting, nil).Once()

	_, err := uc.ReviewMeeting(context.Background(), reviewer, &entities.ReviewMeetingInput{
		MeetingID:    meeting.ID,
		ReviewStatus: entities.ReviewDeclined,
	})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
	m.meetingRepo.AssertNotCalled(t, "UpdateReview", mock.Anything, mock.Anything)
}

func TestMeetingUsecase_ReviewMeeting_NotFound(t *testing.T) {
	uc, m := newMeetingUsecase()

	meetingID := uuid.New()
	m.meetingRepo.On("GetByID", mock.Anything, meetingID).Return(nil, domainerrors.ErrNotFound).Once()

	_, err := uc.ReviewMeeting(context.Background(), &entities.User{ID: uuid.New()}, &entities.ReviewMeetingInput{
		MeetingID:    meetingID,
		ReviewStatus: entities.ReviewApproved,
	})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMeetingUsecase_ListMeetings(t *testing.T) {
	uc, m := newMeetingUsecase()

	userID := uuid.New()
	meetings := []*entities.Meeting{{ID: uuid.New()}, {ID: uuid.New()}}
	m.meetingRepo.On("ListForUser", mock.Anything, userID).Return(meetings, nil).Once()

	got, err := uc.ListMeetings(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	m.meetingRepo.AssertExpectations(t)
}

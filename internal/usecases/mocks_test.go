package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	"github.com/darksuei/pitci-server/internal/usecases"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Mock AuthRepository
type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) Create(ctx context.Context, auth *entities.Auth) error {
	args := m.Called(ctx, auth)
	return args.Error(0)
}

func (m *MockAuthRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Auth, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Auth), args.Error(1)
}

func (m *MockAuthRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.VerificationStatus, verifiedAt *time.Time) error {
	args := m.Called(ctx, id, status, verifiedAt)
	return args.Error(0)
}

// Mock PitchRepository
type MockPitchRepository struct {
	mock.Mock
}

func (m *MockPitchRepository) Create(ctx context.Context, pitch *entities.Pitch) error {
	args := m.Called(ctx, pitch)
	if args.Error(0) == nil && pitch.ID == uuid.Nil {
		pitch.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockPitchRepository) SetUID(ctx context.Context, id uuid.UUID, uid string) error {
	args := m.Called(ctx, id, uid)
	return args.Error(0)
}

func (m *MockPitchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Pitch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Pitch), args.Error(1)
}

func (m *MockPitchRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entities.Pitch, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Pitch), args.Error(1)
}

func (m *MockPitchRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Pitch, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Pitch), args.Error(1)
}

func (m *MockPitchRepository) SetSubmitted(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPitchRepository) UpdateReview(ctx context.Context, review *entities.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockPitchRepository) CreatePersonalInformation(ctx context.Context, rec *entities.PersonalInformation) error {
	args := m.Called(ctx, rec)
	if args.Error(0) == nil && rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockPitchRepository) CreateProfessionalBackground(ctx context.Context, rec *entities.ProfessionalBackground) error {
	args := m.Called(ctx, rec)
	if args.Error(0) == nil && rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockPitchRepository) CreateCompetitionQuestions(ctx context.Context, rec *entities.CompetitionQuestions) error {
	args := m.Called(ctx, rec)
	if args.Error(0) == nil && rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockPitchRepository) CreateTechnicalAgreement(ctx context.Context, rec *entities.TechnicalAgreement) error {
	args := m.Called(ctx, rec)
	if args.Error(0) == nil && rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockPitchRepository) AttachStep(ctx context.Context, pitchID uuid.UUID, step entities.PitchStep, recordID uuid.UUID) error {
	args := m.Called(ctx, pitchID, step, recordID)
	return args.Error(0)
}

func (m *MockPitchRepository) Delete(ctx context.Context, pitch *entities.Pitch) error {
	args := m.Called(ctx, pitch)
	return args.Error(0)
}

// Mock BusinessRepository
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) Create(ctx context.Context, business *entities.Business) error {
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Business), args.Error(1)
}

func (m *MockBusinessRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

// Mock AwardRepository
type MockAwardRepository struct {
	mock.Mock
}

func (m *MockAwardRepository) Create(ctx context.Context, award *entities.Award) error {
	args := m.Called(ctx, award)
	if args.Error(0) == nil && award.ID == uuid.Nil {
		award.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockAwardRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Award, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Award), args.Error(1)
}

func (m *MockAwardRepository) GetByIDAndStatus(ctx context.Context, id uuid.UUID, status entities.AwardStatus) (*entities.Award, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Award), args.Error(1)
}

func (m *MockAwardRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AwardStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAwardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock AwardNomineeRepository
type MockAwardNomineeRepository struct {
	mock.Mock
}

func (m *MockAwardNomineeRepository) Create(ctx context.Context, nominee *entities.AwardNominee) error {
	args := m.Called(ctx, nominee)
	if args.Error(0) == nil && nominee.ID == uuid.Nil {
		nominee.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockAwardNomineeRepository) GetByNomineeRef(ctx context.Context, awardID, nomineeID uuid.UUID) (*entities.AwardNominee, error) {
	args := m.Called(ctx, awardID, nomineeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AwardNominee), args.Error(1)
}

func (m *MockAwardNomineeRepository) GetUnderAward(ctx context.Context, awardID, id uuid.UUID) (*entities.AwardNominee, error) {
	args := m.Called(ctx, awardID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AwardNominee), args.Error(1)
}

func (m *MockAwardNomineeRepository) IncrementVotes(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock VoteRepository
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) Create(ctx context.Context, vote *entities.Vote) error {
	args := m.Called(ctx, vote)
	return args.Error(0)
}

func (m *MockVoteRepository) HasUserVotedInAward(ctx context.Context, userID, awardID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, awardID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVoteRepository) CountByNominee(ctx context.Context, nomineeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, nomineeID)
	return args.Get(0).(int64), args.Error(1)
}

// Mock MeetingRepository
type MockMeetingRepository struct {
	mock.Mock
}

func (m *MockMeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	args := m.Called(ctx, meeting)
	if args.Error(0) == nil && meeting.ID == uuid.Nil {
		meeting.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockMeetingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) ListAll(ctx context.Context) ([]*entities.Meeting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) SetLink(ctx context.Context, id uuid.UUID, link string) error {
	args := m.Called(ctx, id, link)
	return args.Error(0)
}

func (m *MockMeetingRepository) UpdateReview(ctx context.Context, review *entities.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

// Mock AlertRepository
type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) Create(ctx context.Context, alert *entities.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Alert, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Alert), args.Error(1)
}

func (m *MockAlertRepository) MarkRead(ctx context.Context, userID, alertID uuid.UUID) error {
	args := m.Called(ctx, userID, alertID)
	return args.Error(0)
}

// Mock NotificationGateway
type MockNotificationGateway struct {
	mock.Mock
}

func (m *MockNotificationGateway) Send(ctx context.Context, kind usecases.NotificationKind, recipientID uuid.UUID, payload map[string]string) error {
	args := m.Called(ctx, kind, recipientID, payload)
	return args.Error(0)
}

// Mock VerificationCodeStore
type MockCodeStore struct {
	mock.Mock
}

func (m *MockCodeStore) Put(ctx context.Context, email, code string) error {
	args := m.Called(ctx, email, code)
	return args.Error(0)
}

func (m *MockCodeStore) Get(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockCodeStore) Delete(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

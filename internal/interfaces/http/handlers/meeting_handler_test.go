package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	domainerrors "github.com/darksuei/pitci-server/internal/domain/errors"
	"github.com/darksuei/pitci-server/internal/interfaces/http/middleware"
	"github.com/darksuei/pitci-server/internal/usecases"
)

type meetingRepoStub struct {
	meetings map[uuid.UUID]*entities.Meeting
}

func newMeetingRepoStub() *meetingRepoStub {
	return &meetingRepoStub{meetings: map[uuid.UUID]*entities.Meeting{}}
}

func (s *meetingRepoStub) Create(_ context.Context, m *entities.Meeting) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Review != nil && m.Review.ID == uuid.Nil {
		m.Review.ID = uuid.New()
	}
	s.meetings[m.ID] = m
	return nil
}

func (s *meetingRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, ok := s.meetings[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return m, nil
}

func (s *meetingRepoStub) ListForUser(_ context.Context, userID uuid.UUID) ([]*entities.Meeting, error) {
	var out []*entities.Meeting
	for _, m := range s.meetings {
		if m.ProposerID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *meetingRepoStub) ListAll(_ context.Context) ([]*entities.Meeting, error) {
	out := make([]*entities.Meeting, 0, len(s.meetings))
	for _, m := range s.meetings {
		out = append(out, m)
	}
	return out, nil
}

func (s *meetingRepoStub) SetLink(_ context.Context, id uuid.UUID, link string) error {
	m, ok := s.meetings[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	m.MeetingLink = null.StringFrom(link)
	return nil
}

func (s *meetingRepoStub) UpdateReview(_ context.Context, review *entities.Review) error {
	for _, m := range s.meetings {
		if m.Review != nil && m.Review.ID == review.ID {
			m.Review = review
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

type meetingTestEnv struct {
	router      *gin.Engine
	userID      uuid.UUID
	adminID     uuid.UUID
	businessID  uuid.UUID
	meetingRepo *meetingRepoStub
}

func newMeetingTestEnv(t *testing.T) *meetingTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	adminID := uuid.New()
	users := &userRepoStub{users: map[uuid.UUID]*entities.User{
		userID: {
			ID: userID, FullName: "Ada Lovelace", Email: "ada@mail.com",
			Role: entities.RoleUser,
		},
		adminID: {
			ID: adminID, FullName: "Grace Admin", Email: "admin@mail.com",
			Role: entities.RoleAdmin,
		},
	}}

	businessRepo := newBusinessRepoStub()
	business := &entities.Business{BusinessName: "Lattice Labs", BusinessDescription: "Analytics"}
	require.NoError(t, businessRepo.Create(context.Background(), business))

	meetingRepo := newMeetingRepoStub()
	meetingUC := usecases.NewMeetingUsecase(meetingRepo, users, businessRepo, uowStub{})

	meetingHandler := NewMeetingHandler(meetingUC)
	adminHandler := NewAdminHandler(nil, meetingUC, users)

	r := gin.New()
	asUser := func(c *gin.Context) { c.Set(middleware.UserIDKey, userID); c.Next() }
	asAdmin := func(c *gin.Context) { c.Set(middleware.UserIDKey, adminID); c.Next() }
	r.POST("/user/schedule-meeting", asUser, meetingHandler.ScheduleMeeting)
	r.GET("/user/get-scheduled-meetings", asUser, meetingHandler.GetScheduledMeetings)
	r.PATCH("/admin/review-meeting-schedule", asAdmin, adminHandler.ReviewMeeting)
	r.GET("/admin/get-all-scheduled-meetings", asAdmin, adminHandler.GetAllScheduledMeetings)
	r.PATCH("/admin/review-meeting-schedule-as-user", asUser, adminHandler.ReviewMeeting)

	return &meetingTestEnv{
		router:      r,
		userID:      userID,
		adminID:     adminID,
		businessID:  business.ID,
		meetingRepo: meetingRepo,
	}
}

func (env *meetingTestEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	env.router.ServeHTTP(w, req)
	return w
}

func scheduleMeetingBody(recipientID uuid.UUID) gin.H {
	start := time.Now().Add(48 * time.Hour).UTC()
	return gin.H{
		"description":          "Walk through the growth plan",
		"recipientId":          recipientID,
		"proposedMeetingStart": start.Format(time.RFC3339),
		"proposedMeetingEnd":   start.Add(time.Hour).Format(time.RFC3339),
	}
}

func TestMeetingHandler_ScheduleAndReview(t *testing.T) {
	env := newMeetingTestEnv(t)

	w := env.do(http.MethodPost, "/user/schedule-meeting", scheduleMeetingBody(env.businessID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Meeting schedule successfully submitted to admin for approval.")

	var meetingID uuid.UUID
	for id := range env.meetingRepo.meetings {
		meetingID = id
	}
	require.NotEqual(t, uuid.Nil, meetingID)

	// The proposer sees the pending schedule
	w = env.do(http.MethodGet, "/user/get-scheduled-meetings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pending")

	// Admin approves with a link
	w = env.do(http.MethodPatch, "/admin/review-meeting-schedule", gin.H{
		"meetingId":    meetingID,
		"reviewStatus": "approved",
		"meetingLink":  "https://meet.example.com/abc",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Meeting reviewed successfully")
	assert.Equal(t, "https://meet.example.com/abc", env.meetingRepo.meetings[meetingID].MeetingLink.String)

	// Decision is final
	w = env.do(http.MethodPatch, "/admin/review-meeting-schedule", gin.H{
		"meetingId":    meetingID,
		"reviewStatus": "declined",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Meeting already reviewed")
}

func TestMeetingHandler_ScheduleUnknownRecipient(t *testing.T) {
	env := newMeetingTestEnv(t)

	w := env.do(http.MethodPost, "/user/schedule-meeting", scheduleMeetingBody(uuid.New()))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Proposer or recipient not found")
}

func TestMeetingHandler_ReviewUnknownMeeting(t *testing.T) {
	env := newMeetingTestEnv(t)

	w := env.do(http.MethodPatch, "/admin/review-meeting-schedule", gin.H{
		"meetingId":    uuid.New(),
		"reviewStatus": "declined",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Meeting not found")
}

func TestMeetingHandler_ReviewRequiresAdminRow(t *testing.T) {
	env := newMeetingTestEnv(t)

	w := env.do(http.MethodPatch, "/admin/review-meeting-schedule-as-user", gin.H{
		"meetingId":    uuid.New(),
		"reviewStatus": "approved",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions")
}

func TestMeetingHandler_GetAllScheduledMeetings(t *testing.T) {
	env := newMeetingTestEnv(t)

	w := env.do(http.MethodPost, "/user/schedule-meeting", scheduleMeetingBody(env.businessID))
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodGet, "/admin/get-all-scheduled-meetings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Walk through the growth plan")
}

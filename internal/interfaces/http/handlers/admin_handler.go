package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	domainerrors "github.com/darksuei/pitci-server/internal/domain/errors"
	"github.com/darksuei/pitci-server/internal/domain/repositories"
	"github.com/darksuei/pitci-server/internal/interfaces/http/middleware"
	"github.com/darksuei/pitci-server/internal/interfaces/http/response"
	"github.com/darksuei/pitci-server/internal/usecases"
)

// AdminHandler handles admin-only endpoints
type AdminHandler struct {
	pitchUsecase   *usecases.PitchUsecase
	meetingUsecase *usecases.MeetingUsecase
	userRepo       repositories.UserRepository
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(pitchUsecase *usecases.PitchUsecase, meetingUsecase *usecases.MeetingUsecase, userRepo repositories.UserRepository) *AdminHandler {
	return &AdminHandler{pitchUsecase: pitchUsecase, meetingUsecase: meetingUsecase, userRepo: userRepo}
}

// authenticatedAdmin resolves the caller against the user table. The token's
// role claim can outlive a demotion; the row is authoritative.
func (h *AdminHandler) authenticatedAdmin(c *gin.Context) (*entities.User, bool) {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "User not authenticated")
		return nil, false
	}

	reviewer, err := h.userRepo.GetByID(c.Request.Context(), reviewerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.ErrorWithStatus(c, http.StatusUnauthorized, "Reviewer not found")
			return nil, false
		}
		response.Error(c, err)
		return nil, false
	}

	if !reviewer.IsAdmin() {
		response.ErrorWithStatus(c, http.StatusForbidden, "Insufficient permissions")
		return nil, false
	}
	return reviewer, true
}

// ReviewPitch records an approval or decline for a pending pitch
// PATCH /api/v1/admin/review-pitch
func (h *AdminHandler) ReviewPitch(c *gin.Context) {
	var input entities.ReviewPitchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	reviewer, ok := h.authenticatedAdmin(c)
	if !ok {
		return
	}

	if err := h.pitchUsecase.ReviewPitch(c.Request.Context(), reviewer, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Pitch reviewed successfully",
	})
}

// ReviewMeeting approves or declines a proposed meeting schedule
// PATCH /api/v1/admin/review-meeting-schedule
func (h *AdminHandler) ReviewMeeting(c *gin.Context) {
	var input entities.ReviewMeetingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	reviewer, ok := h.authenticatedAdmin(c)
	if !ok {
		return
	}

	meeting, err := h.meetingUsecase.ReviewMeeting(c.Request.Context(), reviewer, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Meeting reviewed successfully",
		"meeting": meeting,
	})
}

// GetAllScheduledMeetings lists every meeting schedule for admin review
// GET /api/v1/admin/get-all-scheduled-meetings
func (h *AdminHandler) GetAllScheduledMeetings(c *gin.Context) {
	if _, ok := h.authenticatedAdmin(c); !ok {
		return
	}

	meetings, err := h.meetingUsecase.ListAllMeetings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success":  true,
		"meetings": meetings,
	})
}

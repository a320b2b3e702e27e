package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	"github.com/darksuei/pitci-server/internal/interfaces/http/middleware"
	"github.com/darksuei/pitci-server/internal/interfaces/http/response"
	"github.com/darksuei/pitci-server/internal/usecases"
)

// MeetingHandler handles meeting schedule endpoints
type MeetingHandler struct {
	meetingUsecase *usecases.MeetingUsecase
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingUsecase *usecases.MeetingUsecase) *MeetingHandler {
	return &MeetingHandler{meetingUsecase: meetingUsecase}
}

// ScheduleMeeting proposes a meeting with a business for admin approval
// POST /api/v1/user/schedule-meeting
func (h *MeetingHandler) ScheduleMeeting(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var input entities.ScheduleMeetingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	meeting, err := h.meetingUsecase.ScheduleMeeting(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "Meeting schedule successfully submitted to admin for approval.",
		"meeting": meeting,
	})
}

// GetScheduledMeetings lists the meetings the caller proposed or receives
// GET /api/v1/user/get-scheduled-meetings
func (h *MeetingHandler) GetScheduledMeetings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	meetings, err := h.meetingUsecase.ListMeetings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success":  true,
		"meetings": meetings,
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/darksuei/pitci-server/internal/interfaces/http/middleware"
	"github.com/darksuei/pitci-server/internal/interfaces/http/response"
	"github.com/darksuei/pitci-server/internal/usecases"
)

// AlertHandler handles in-app alert endpoints
type AlertHandler struct {
	alertService *usecases.AlertService
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertService *usecases.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// ListAlerts returns the caller's alerts, newest first
// GET /api/v1/alert
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	alerts, err := h.alertService.ListAlerts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"alerts":  alerts,
	})
}

// MarkAlertRead marks one of the caller's alerts as read
// PATCH /api/v1/alert/read/:id
func (h *AlertHandler) MarkAlertRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "Invalid alert id")
		return
	}

	if err := h.alertService.MarkAlertRead(c.Request.Context(), userID, alertID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Alert marked as read",
	})
}

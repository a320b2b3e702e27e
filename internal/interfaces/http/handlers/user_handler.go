package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	"github.com/darksuei/pitci-server/internal/interfaces/http/middleware"
	"github.com/darksuei/pitci-server/internal/interfaces/http/response"
	"github.com/darksuei/pitci-server/internal/usecases"
)

// UserHandler handles account settings endpoints
type UserHandler struct {
	userUsecase *usecases.UserUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase *usecases.UserUsecase) *UserHandler {
	return &UserHandler{userUsecase: userUsecase}
}

// UpdateNotificationSettings toggles the caller's notification preferences
// PATCH /api/v1/user/notification-settings
func (h *UserHandler) UpdateNotificationSettings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var input entities.NotificationSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userUsecase.UpdateNotificationSettings(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Notification settings updated successfully",
		"user":    user,
	})
}

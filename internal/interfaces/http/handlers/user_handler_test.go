package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	"github.com/darksuei/pitci-server/internal/interfaces/http/middleware"
	"github.com/darksuei/pitci-server/internal/usecases"
)

func TestUserHandler_UpdateNotificationSettings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	users := &userRepoStub{users: map[uuid.UUID]*entities.User{
		userID: {
			ID: userID, FullName: "Ada Lovelace", Email: "ada@mail.com",
			Role:                    entities.RoleUser,
			NotificationStatus:      true,
			PitchNotificationStatus: true,
		},
	}}

	handler := NewUserHandler(usecases.NewUserUsecase(users))

	r := gin.New()
	asUser := func(c *gin.Context) { c.Set(middleware.UserIDKey, userID); c.Next() }
	r.PATCH("/user/notification-settings", asUser, handler.UpdateNotificationSettings)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(gin.H{"pitchNotificationStatus": false}))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/user/notification-settings", &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Notification settings updated successfully")
	assert.False(t, users.users[userID].PitchNotificationStatus)
	// Flags absent from the payload stay as they were
	assert.True(t, users.users[userID].NotificationStatus)
}

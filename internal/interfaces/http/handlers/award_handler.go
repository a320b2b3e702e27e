package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	"github.com/darksuei/pitci-server/internal/interfaces/http/middleware"
	"github.com/darksuei/pitci-server/internal/interfaces/http/response"
	"github.com/darksuei/pitci-server/internal/usecases"
)

// AwardHandler handles award, nomination and voting endpoints
type AwardHandler struct {
	awardUsecase *usecases.AwardUsecase
}

// NewAwardHandler creates a new award handler
func NewAwardHandler(awardUsecase *usecases.AwardUsecase) *AwardHandler {
	return &AwardHandler{awardUsecase: awardUsecase}
}

// CreateAward creates a new award category
// POST /api/v1/award/create-award
func (h *AwardHandler) CreateAward(c *gin.Context) {
	var input entities.CreateAwardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	award, err := h.awardUsecase.CreateAward(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "Award created successfully",
		"award":   award,
	})
}

// GetAward returns an award category
// GET /api/v1/award/:id
func (h *AwardHandler) GetAward(c *gin.Context) {
	awardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "Invalid award id")
		return
	}

	award, err := h.awardUsecase.GetAward(c.Request.Context(), awardID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"award":   award,
	})
}

// DeleteAward removes an award category and its nominees
// DELETE /api/v1/award/:id
func (h *AwardHandler) DeleteAward(c *gin.Context) {
	awardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "Invalid award id")
		return
	}

	if err := h.awardUsecase.DeleteAward(c.Request.Context(), awardID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Award deleted successfully",
	})
}

// ToggleAwardStatus moves an award to a new lifecycle window
// POST /api/v1/award/toggle-award-status
func (h *AwardHandler) ToggleAwardStatus(c *gin.Context) {
	var input entities.AwardStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	award, err := h.awardUsecase.SetAwardStatus(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Award status updated successfully",
		"award":   award,
	})
}

// NominateForAward enters a nominee under an award category
// POST /api/v1/award/nominate-for-award
func (h *AwardHandler) NominateForAward(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var input entities.NominateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	nominee, err := h.awardUsecase.Nominate(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "Nomination recorded successfully",
		"nominee": nominee,
	})
}

// VoteForNominee casts the caller's vote in an award category
// PATCH /api/v1/award/vote-for-nominee
func (h *AwardHandler) VoteForNominee(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var input entities.VoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	nominee, err := h.awardUsecase.Vote(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Vote recorded successfully",
		"nominee": nominee,
	})
}

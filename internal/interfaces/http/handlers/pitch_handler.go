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

// PitchHandler handles pitch lifecycle endpoints
type PitchHandler struct {
	pitchUsecase *usecases.PitchUsecase
}

// NewPitchHandler creates a new pitch handler
func NewPitchHandler(pitchUsecase *usecases.PitchUsecase) *PitchHandler {
	return &PitchHandler{pitchUsecase: pitchUsecase}
}

// InitiatePitch starts a new pitch from the personal information step
// POST /api/v1/pitch/initiate-pitch
func (h *PitchHandler) InitiatePitch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var input entities.PersonalInformationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	pitch, err := h.pitchUsecase.InitiatePitch(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"message": "Pitch initiated successfully",
		"pitch":   pitch,
	})
}

// UpdatePitchStep replaces one section of the pitch
// PATCH /api/v1/pitch/update-pitch/:id/:step
func (h *PitchHandler) UpdatePitchStep(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	pitchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "Invalid pitch id")
		return
	}

	step := entities.PitchStep(c.Param("step"))
	payload, err := bindStepPayload(c, step)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error())
		return
	}

	pitch, err := h.pitchUsecase.UpdatePitchStep(c.Request.Context(), userID, pitchID, step, payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Pitch updated successfully",
		"pitch":   pitch,
	})
}

// SubmitPitch submits the pitch for review
// POST /api/v1/pitch/submit-pitch/:id
func (h *PitchHandler) SubmitPitch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	pitchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "Invalid pitch id")
		return
	}

	pitch, err := h.pitchUsecase.SubmitPitch(c.Request.Context(), userID, pitchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Pitch submitted successfully",
		"pitch":   pitch,
	})
}

// GetPitch returns the caller's pitch by id
// GET /api/v1/pitch/:id
func (h *PitchHandler) GetPitch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	pitchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "Invalid pitch id")
		return
	}

	pitch, err := h.pitchUsecase.GetPitch(c.Request.Context(), userID, pitchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"pitch":   pitch,
	})
}

// DeletePitch removes the caller's pitch and its sections
// DELETE /api/v1/pitch/delete-pitch/:id
func (h *PitchHandler) DeletePitch(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.ErrorWithStatus(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	pitchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "Invalid pitch id")
		return
	}

	if err := h.pitchUsecase.DeletePitch(c.Request.Context(), userID, pitchID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Pitch deleted successfully",
	})
}

func bindStepPayload(c *gin.Context, step entities.PitchStep) (interface{}, error) {
	switch step {
	case entities.StepPersonalInformation:
		var input entities.PersonalInformationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			return nil, err
		}
		return &input, nil
	case entities.StepProfessionalBackground:
		var input entities.ProfessionalBackgroundInput
		if err := c.ShouldBindJSON(&input); err != nil {
			return nil, err
		}
		return &input, nil
	case entities.StepCompetitionQuestions:
		var input entities.CompetitionQuestionsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			return nil, err
		}
		return &input, nil
	case entities.StepTechnicalAgreement:
		var input entities.TechnicalAgreementInput
		if err := c.ShouldBindJSON(&input); err != nil {
			return nil, err
		}
		return &input, nil
	default:
		// Let the usecase reject the unknown step uniformly
		return nil, nil
	}
}

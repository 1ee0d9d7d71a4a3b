package handlers

import (
	"net/http"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	preferenceService *services.PreferenceService
}

func NewPreferenceHandler(preferenceService *services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceService: preferenceService,
	}
}

// GetPreferences godoc
// @Summary Get user preferences
// @Description Get the current user's preferences, creating defaults on first access
// @Tags preferences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserPreference
// @Router /api/v1/preferences [get]
func (h *PreferenceHandler) GetPreferences(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	prefs, err := h.preferenceService.GetPreferences(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get preferences", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences godoc
// @Summary Update user preferences
// @Description Partially update the current user's preferences
// @Tags preferences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdatePreferencesRequest true "Preference updates"
// @Success 200 {object} models.UserPreference
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/preferences [put]
func (h *PreferenceHandler) UpdatePreferences(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	prefs, err := h.preferenceService.UpdatePreferences(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

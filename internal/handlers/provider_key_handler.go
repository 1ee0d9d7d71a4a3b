package handlers

import (
	"errors"
	"net/http"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ProviderKeyHandler struct {
	providerKeyService *services.ProviderKeyService
}

func NewProviderKeyHandler(providerKeyService *services.ProviderKeyService) *ProviderKeyHandler {
	return &ProviderKeyHandler{
		providerKeyService: providerKeyService,
	}
}

// SaveKey godoc
// @Summary Save a provider API key
// @Description Store an API key for an AI provider; replaces any existing key for the same provider and name
// @Tags provider-keys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SaveProviderKeyRequest true "Provider key request"
// @Success 200 {object} models.ProviderKeyResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/provider-keys [post]
func (h *ProviderKeyHandler) SaveKey(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.SaveProviderKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	key, err := h.providerKeyService.SaveKey(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save provider key", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, key)
}

// ListKeys godoc
// @Summary List provider API keys
// @Description List the current user's stored provider keys without key material
// @Tags provider-keys
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ProviderKeyResponse
// @Router /api/v1/provider-keys [get]
func (h *ProviderKeyHandler) ListKeys(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	keys, err := h.providerKeyService.ListKeys(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get provider keys", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, keys)
}

// ToggleKey godoc
// @Summary Activate or deactivate a provider key
// @Tags provider-keys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider key ID"
// @Param request body models.ToggleProviderKeyRequest true "Toggle request"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/provider-keys/{id}/toggle [put]
func (h *ProviderKeyHandler) ToggleKey(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.ToggleProviderKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if err := h.providerKeyService.SetKeyActive(c.Param("id"), userID, req.IsActive); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider key not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update provider key", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Provider key updated successfully"})
}

// DeleteKey godoc
// @Summary Delete a provider key
// @Tags provider-keys
// @Produce json
// @Security BearerAuth
// @Param id path string true "Provider key ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/provider-keys/{id} [delete]
func (h *ProviderKeyHandler) DeleteKey(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	if err := h.providerKeyService.DeleteKey(c.Param("id"), userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Provider key not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete provider key", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Provider key deleted successfully"})
}

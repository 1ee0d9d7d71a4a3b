package handlers

import (
	"errors"
	"net/http"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type PublishingHandler struct {
	publishingService *services.PublishingService
}

func NewPublishingHandler(publishingService *services.PublishingService) *PublishingHandler {
	return &PublishingHandler{
		publishingService: publishingService,
	}
}

// ConnectPlatform godoc
// @Summary Connect a publishing platform
// @Description Store or refresh a platform connection for the current user
// @Tags publishing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ConnectPlatformRequest true "Platform connection request"
// @Success 200 {object} models.PublishingConnection
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/publishing/connections [post]
func (h *PublishingHandler) ConnectPlatform(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.ConnectPlatformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	connection, err := h.publishingService.ConnectPlatform(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to connect platform", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, connection)
}

// ListConnections godoc
// @Summary List platform connections
// @Tags publishing
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PublishingConnection
// @Router /api/v1/publishing/connections [get]
func (h *PublishingHandler) ListConnections(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	connections, err := h.publishingService.ListConnections(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get connections", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, connections)
}

// DisconnectPlatform godoc
// @Summary Disconnect a publishing platform
// @Tags publishing
// @Produce json
// @Security BearerAuth
// @Param platform path string true "Platform name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/publishing/connections/{platform} [delete]
func (h *PublishingHandler) DisconnectPlatform(c *gin.Context) {
	userID := c.MustGet("user_id").(string)
	platform := c.Param("platform")

	if err := h.publishingService.DisconnectPlatform(userID, platform); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Connection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disconnect platform", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Platform disconnected successfully"})
}

// PublishContent godoc
// @Summary Publish a content item
// @Description Queue a content item for publishing to one or more connected platforms
// @Tags publishing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Param request body models.PublishContentRequest true "Publish request"
// @Success 202 {array} models.PublishedContent
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/content/{id}/publish [post]
func (h *PublishingHandler) PublishContent(c *gin.Context) {
	userID := c.MustGet("user_id").(string)
	contentID := c.Param("id")

	var req models.PublishContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	records, err := h.publishingService.PublishContent(userID, contentID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish content", "details": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, records)
}

// ListPublished godoc
// @Summary List publish records
// @Description List publish records for the current user, optionally filtered by content item
// @Tags publishing
// @Produce json
// @Security BearerAuth
// @Param content_id query string false "Content ID"
// @Success 200 {array} models.PublishedContent
// @Router /api/v1/publishing/published [get]
func (h *PublishingHandler) ListPublished(c *gin.Context) {
	userID := c.MustGet("user_id").(string)
	contentID := c.Query("content_id")

	records, err := h.publishingService.ListPublished(userID, contentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get publish records", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// UpdatePublishStatus godoc
// @Summary Update a publish record's status
// @Description Report the outcome of a publish job back from the worker
// @Tags publishing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Publish record ID"
// @Param request body models.UpdatePublishStatusRequest true "Status update request"
// @Success 200 {object} models.PublishedContent
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/publishing/published/{id}/status [put]
func (h *PublishingHandler) UpdatePublishStatus(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.UpdatePublishStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	record, err := h.publishingService.UpdatePublishStatus(c.Param("id"), userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Publish record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update publish status", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

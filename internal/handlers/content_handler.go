package handlers

import (
	"errors"
	"net/http"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/services"
	"github.com/contentflowhq/contentflow-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentService *services.ContentService
}

func NewContentHandler(contentService *services.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// CreateContent godoc
// @Summary Create content
// @Description Create a content item owned by the caller
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateContentRequest true "Content creation request"
// @Success 201 {object} models.Content
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/content [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	content, err := h.contentService.CreateContent(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create content", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, content)
}

// ListContent godoc
// @Summary List content
// @Description List the caller's content with optional status filter and pagination
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/content [get]
func (h *ContentHandler) ListContent(c *gin.Context) {
	userID := c.MustGet("user_id").(string)
	status := c.Query("status")
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))

	items, total, err := h.contentService.ListContent(userID, status, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get content", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content":    items,
		"pagination": utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// GetContent godoc
// @Summary Get content by ID
// @Description Get one content item the caller owns
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Success 200 {object} models.Content
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/content/{id} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	content, err := h.contentService.GetContent(c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get content", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, content)
}

// UpdateContent godoc
// @Summary Update content
// @Description Apply a partial update to a content item the caller owns
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Param request body models.UpdateContentRequest true "Content update request"
// @Success 200 {object} models.Content
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/content/{id} [put]
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	content, err := h.contentService.UpdateContent(c.Param("id"), userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update content", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, content)
}

// DeleteContent godoc
// @Summary Delete content
// @Description Delete a content item the caller owns
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/content/{id} [delete]
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	if err := h.contentService.DeleteContent(c.Param("id"), userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete content", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted successfully"})
}

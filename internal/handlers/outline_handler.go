package handlers

import (
	"errors"
	"net/http"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type OutlineHandler struct {
	outlineService *services.OutlineService
}

func NewOutlineHandler(outlineService *services.OutlineService) *OutlineHandler {
	return &OutlineHandler{
		outlineService: outlineService,
	}
}

// SaveOutline godoc
// @Summary Save an outline
// @Description Store a content outline, typically one produced by a generation run
// @Tags outlines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateOutlineRequest true "Outline creation request"
// @Success 201 {object} models.Outline
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/outlines [post]
func (h *OutlineHandler) SaveOutline(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.CreateOutlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	outline, err := h.outlineService.SaveOutline(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save outline", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, outline)
}

// ListOutlines godoc
// @Summary List outlines
// @Tags outlines
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Outline
// @Router /api/v1/outlines [get]
func (h *OutlineHandler) ListOutlines(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	outlines, err := h.outlineService.ListOutlines(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get outlines", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, outlines)
}

// GetOutline godoc
// @Summary Get an outline by ID
// @Tags outlines
// @Produce json
// @Security BearerAuth
// @Param id path string true "Outline ID"
// @Success 200 {object} models.Outline
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/outlines/{id} [get]
func (h *OutlineHandler) GetOutline(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	outline, err := h.outlineService.GetOutline(c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Outline not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get outline", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, outline)
}

// UpdateOutline godoc
// @Summary Update an outline
// @Tags outlines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Outline ID"
// @Param request body models.UpdateOutlineRequest true "Outline update request"
// @Success 200 {object} models.Outline
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/outlines/{id} [put]
func (h *OutlineHandler) UpdateOutline(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.UpdateOutlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	outline, err := h.outlineService.UpdateOutline(c.Param("id"), userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Outline not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update outline", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, outline)
}

// DeleteOutline godoc
// @Summary Delete an outline
// @Tags outlines
// @Produce json
// @Security BearerAuth
// @Param id path string true "Outline ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/outlines/{id} [delete]
func (h *OutlineHandler) DeleteOutline(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	if err := h.outlineService.DeleteOutline(c.Param("id"), userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Outline not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete outline", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Outline deleted successfully"})
}

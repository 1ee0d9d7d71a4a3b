package handlers

import (
	"errors"
	"net/http"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type IdeaHandler struct {
	ideaService *services.IdeaService
}

func NewIdeaHandler(ideaService *services.IdeaService) *IdeaHandler {
	return &IdeaHandler{
		ideaService: ideaService,
	}
}

// SaveIdea godoc
// @Summary Save an idea
// @Description Store a content idea, typically one picked from a generation run
// @Tags ideas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateIdeaRequest true "Idea creation request"
// @Success 201 {object} models.Idea
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/ideas [post]
func (h *IdeaHandler) SaveIdea(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	idea, err := h.ideaService.SaveIdea(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save idea", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, idea)
}

// ListIdeas godoc
// @Summary List ideas
// @Description List the caller's ideas, optionally only the saved ones
// @Tags ideas
// @Produce json
// @Security BearerAuth
// @Param saved query bool false "Only saved ideas"
// @Success 200 {array} models.Idea
// @Router /api/v1/ideas [get]
func (h *IdeaHandler) ListIdeas(c *gin.Context) {
	userID := c.MustGet("user_id").(string)
	savedOnly := c.Query("saved") == "true"

	ideas, err := h.ideaService.ListIdeas(userID, savedOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get ideas", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ideas)
}

// GetIdea godoc
// @Summary Get an idea by ID
// @Tags ideas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Idea ID"
// @Success 200 {object} models.Idea
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/ideas/{id} [get]
func (h *IdeaHandler) GetIdea(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	idea, err := h.ideaService.GetIdea(c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get idea", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, idea)
}

// UpdateIdea godoc
// @Summary Update an idea
// @Tags ideas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Idea ID"
// @Param request body models.UpdateIdeaRequest true "Idea update request"
// @Success 200 {object} models.Idea
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/ideas/{id} [put]
func (h *IdeaHandler) UpdateIdea(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.UpdateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	idea, err := h.ideaService.UpdateIdea(c.Param("id"), userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update idea", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, idea)
}

// DeleteIdea godoc
// @Summary Delete an idea
// @Tags ideas
// @Produce json
// @Security BearerAuth
// @Param id path string true "Idea ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/ideas/{id} [delete]
func (h *IdeaHandler) DeleteIdea(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	if err := h.ideaService.DeleteIdea(c.Param("id"), userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Idea not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete idea", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Idea deleted successfully"})
}

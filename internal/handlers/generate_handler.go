package handlers

import (
	"errors"
	"net/http"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/services/ai"

	"github.com/gin-gonic/gin"
)

type GenerateHandler struct {
	aiService *ai.Service
}

func NewGenerateHandler(aiService *ai.Service) *GenerateHandler {
	return &GenerateHandler{
		aiService: aiService,
	}
}

// GenerateIdeas godoc
// @Summary Generate content ideas
// @Description Generate content ideas for a business description via the AI provider
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.GenerateIdeasRequest true "Idea generation request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/ai/generate-ideas [post]
func (h *GenerateHandler) GenerateIdeas(c *gin.Context) {
	var req models.GenerateIdeasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if req.BusinessDescription == "" || len(req.ContentTypes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: businessDescription and contentTypes"})
		return
	}

	ideas, err := h.aiService.GenerateIdeas(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		h.writeAIError(c, err, "Failed to generate ideas from AI", true)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ideas": ideas})
}

// GenerateHooks godoc
// @Summary Generate opening hooks
// @Description Generate compelling opening hooks for a topic via the AI provider
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.GenerateHooksRequest true "Hook generation request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/ai/generate-hooks [post]
func (h *GenerateHandler) GenerateHooks(c *gin.Context) {
	var req models.GenerateHooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if req.Topic == "" || req.ContentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: topic and contentType"})
		return
	}

	hooks, err := h.aiService.GenerateHooks(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		h.writeAIError(c, err, "Failed to generate hooks from AI", false)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hooks": hooks})
}

// GenerateOutline godoc
// @Summary Generate a content outline
// @Description Generate a structured outline for a topic and hook via the AI provider
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.GenerateOutlineRequest true "Outline generation request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/ai/generate-outline [post]
func (h *GenerateHandler) GenerateOutline(c *gin.Context) {
	var req models.GenerateOutlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if req.Topic == "" || req.Hook == "" || req.ContentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: topic, hook, and contentType"})
		return
	}

	outline, err := h.aiService.GenerateOutline(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		h.writeAIError(c, err, "Failed to generate outline from AI", false)
		return
	}

	c.JSON(http.StatusOK, gin.H{"outline": outline})
}

// TextOperation godoc
// @Summary Transform text
// @Description Expand, condense, improve or rephrase text via the AI provider
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.TextOperationRequest true "Text operation request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/ai/text-operations [post]
func (h *GenerateHandler) TextOperation(c *gin.Context) {
	var req models.TextOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if req.Text == "" || req.Operation == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: text and operation"})
		return
	}

	switch req.Operation {
	case models.TextOpExpand, models.TextOpCondense, models.TextOpImprove, models.TextOpRephrase:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operation type"})
		return
	}

	result, err := h.aiService.TransformText(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		h.writeAIError(c, err, "Failed to process text with AI", false)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// AnalyzeContent godoc
// @Summary Analyze content
// @Description Score content for SEO, readability and tone via the AI provider
// @Tags ai
// @Accept json
// @Produce json
// @Param request body models.AnalyzeContentRequest true "Content analysis request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/ai/analyze-content [post]
func (h *GenerateHandler) AnalyzeContent(c *gin.Context) {
	var req models.AnalyzeContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: text"})
		return
	}

	analysis, err := h.aiService.AnalyzeContent(c.Request.Context(), c.GetString("user_id"), &req)
	if err != nil {
		h.writeAIError(c, err, "Failed to analyze content with AI", false)
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

// writeAIError maps AI service failures to the proxy's response contract
func (h *GenerateHandler) writeAIError(c *gin.Context, err error, upstreamMessage string, includeDetails bool) {
	if errors.Is(err, ai.ErrNotConfigured) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var upstream *ai.UpstreamError
	if errors.As(err, &upstream) {
		if includeDetails {
			c.JSON(http.StatusInternalServerError, gin.H{"error": upstreamMessage, "details": upstream.Detail})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": upstreamMessage})
		}
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentService *services.DocumentService
}

func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// RegisterDocument godoc
// @Summary Register a reference document
// @Description Record a reference document's metadata for the current user
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateDocumentRequest true "Document registration request"
// @Success 201 {object} models.Document
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/documents [post]
func (h *DocumentHandler) RegisterDocument(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	document, err := h.documentService.RegisterDocument(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register document", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, document)
}

// ListDocuments godoc
// @Summary List documents
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Document
// @Router /api/v1/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	documents, err := h.documentService.ListDocuments(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get documents", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, documents)
}

// GetDocument godoc
// @Summary Get a document by ID
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	document, err := h.documentService.GetDocument(c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get document", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, document)
}

// UpdateDocument godoc
// @Summary Update a document
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Param request body models.UpdateDocumentRequest true "Document update request"
// @Success 200 {object} models.Document
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	document, err := h.documentService.UpdateDocument(c.Param("id"), userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, document)
}

// DeleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	if err := h.documentService.DeleteDocument(c.Param("id"), userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

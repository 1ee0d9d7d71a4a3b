package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/services"
	"github.com/contentflowhq/contentflow-backend/internal/services/excel"
	"github.com/contentflowhq/contentflow-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
	excelService     *excel.Service
	exportsDir       string
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService, excelService *excel.Service, exportsDir string) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		excelService:     excelService,
		exportsDir:       exportsDir,
	}
}

// RecordMetrics godoc
// @Summary Record analytics metrics
// @Description Record a metrics snapshot for a publish record owned by the current user
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RecordAnalyticsRequest true "Metrics snapshot"
// @Success 201 {object} models.AnalyticsRecord
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/analytics [post]
func (h *AnalyticsHandler) RecordMetrics(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.RecordAnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	record, err := h.analyticsService.RecordMetrics(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Publish record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record metrics", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListMetrics godoc
// @Summary List analytics records
// @Description List metrics snapshots for the current user, optionally filtered by publish record
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param published_content_id query string false "Publish record ID"
// @Success 200 {array} models.AnalyticsRecord
// @Router /api/v1/analytics [get]
func (h *AnalyticsHandler) ListMetrics(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	records, err := h.analyticsService.ListMetrics(userID, c.Query("published_content_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get analytics", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetSummary godoc
// @Summary Summarize analytics
// @Description Aggregate metrics across all of the current user's published content
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AnalyticsSummary
// @Router /api/v1/analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	summary, err := h.analyticsService.Summarize(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize analytics", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ExportAnalytics godoc
// @Summary Export analytics to Excel
// @Description Export the current user's analytics snapshots to an Excel file
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 302 {string} string "Redirect to download URL"
// @Failure 500 {object} map[string]interface{} "success: false, error: error message"
// @Router /api/v1/analytics/export [get]
func (h *AnalyticsHandler) ExportAnalytics(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	result, err := h.excelService.ExportAnalytics(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	if !result.Success {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   result.Message,
		})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/api/v1/analytics/export/download/%s", result.Filename))
}

// DownloadExport godoc
// @Summary Download an analytics export
// @Description Download a previously exported analytics Excel file
// @Tags analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param filename path string true "Export filename"
// @Success 200 {file} binary "Excel file"
// @Failure 404 {object} map[string]interface{} "success: false, error: error message"
// @Router /api/v1/analytics/export/download/{filename} [get]
func (h *AnalyticsHandler) DownloadExport(c *gin.Context) {
	filename := utils.SanitizeFileName(c.Param("filename"))
	filePath := filepath.Join(h.exportsDir, filename)

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "File not found",
		})
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")
	c.Header("Cache-Control", "must-revalidate")
	c.Header("Pragma", "public")

	c.File(filePath)
}

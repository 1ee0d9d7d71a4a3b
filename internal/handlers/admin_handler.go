package handlers

import (
	"net/http"
	"strconv"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/services"
	"github.com/contentflowhq/contentflow-backend/internal/services/auth"
	"github.com/contentflowhq/contentflow-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *services.AdminService
	authService  *auth.AuthService
}

func NewAdminHandler(adminService *services.AdminService, authService *auth.AuthService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		authService:  authService,
	}
}

// GetSystemStats godoc
// @Summary Get system statistics
// @Description Get aggregate counts across users, content and error logs
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.SystemStats
// @Failure 403 {object} map[string]interface{}
// @Router /api/v1/admin/stats [get]
func (h *AdminHandler) GetSystemStats(c *gin.Context) {
	stats, err := h.adminService.GetSystemStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get system stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListUsers godoc
// @Summary List users
// @Description List all users with pagination and optional email/name search
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param search query string false "Search by email or name"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /api/v1/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))
	search := utils.SanitizeSearchQuery(c.Query("search"))

	users, total, err := h.authService.GetAllUsers(page, pageSize, search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get users", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// SetUserActive godoc
// @Summary Activate or deactivate a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body models.SetUserActiveRequest true "Active status"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/users/{id}/active [put]
func (h *AdminHandler) SetUserActive(c *gin.Context) {
	var req models.SetUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if err := h.authService.SetUserActive(c.Param("id"), req.IsActive); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated successfully"})
}

// ResetUserPassword godoc
// @Summary Reset a user's password
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body models.ResetPasswordRequest true "New password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/users/{id}/password [put]
func (h *AdminHandler) ResetUserPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if issues := utils.ValidatePassword(req.NewPassword); len(issues) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password does not meet requirements", "details": issues})
		return
	}

	if err := h.authService.ResetPassword(c.Param("id"), req.NewPassword); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

// GetErrorMetrics godoc
// @Summary Get client error metrics
// @Description Get stored client error counts by severity and category plus the most recent entries
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param recent_limit query int false "Number of recent errors to include" default(20)
// @Success 200 {object} models.ErrorMetrics
// @Failure 403 {object} map[string]interface{}
// @Router /api/v1/admin/errors/metrics [get]
func (h *AdminHandler) GetErrorMetrics(c *gin.Context) {
	recentLimit, _ := strconv.Atoi(c.DefaultQuery("recent_limit", "20"))

	metrics, err := h.adminService.GetErrorMetrics(recentLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get error metrics", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, metrics)
}

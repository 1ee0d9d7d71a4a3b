package handlers

import (
	"net/http"
	"time"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/services"
	"github.com/contentflowhq/contentflow-backend/internal/services/errorlog"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ErrorLogHandler struct {
	sink   *errorlog.Sink
	sseHub *services.SSEHub
}

func NewErrorLogHandler(sink *errorlog.Sink, sseHub *services.SSEHub) *ErrorLogHandler {
	return &ErrorLogHandler{
		sink:   sink,
		sseHub: sseHub,
	}
}

// ReportErrors godoc
// @Summary Report client-side errors
// @Description Accept a batch of error events from a client for asynchronous storage
// @Tags errors
// @Accept json
// @Produce json
// @Param request body models.ReportErrorsRequest true "Error batch"
// @Success 202 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/logs/errors [post]
func (h *ErrorLogHandler) ReportErrors(c *gin.Context) {
	var req models.ReportErrorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	// Reporting works without a session; a valid bearer token attributes
	// the batch to the caller.
	userID := c.GetString("user_id")

	logs := make([]*models.ClientErrorLog, 0, len(req.Errors))
	for _, entry := range req.Errors {
		errorLog := &models.ClientErrorLog{
			UserID:    userID,
			Severity:  entry.Severity,
			Category:  entry.Category,
			Message:   entry.Message,
			Stack:     entry.Stack,
			Context:   entry.Context,
			UserAgent: entry.UserAgent,
			URL:       entry.URL,
		}
		if entry.OccurredAt != nil {
			errorLog.OccurredAt = *entry.OccurredAt
		}
		logs = append(logs, errorLog)
	}

	h.sink.EnqueueBatch(logs)

	c.JSON(http.StatusAccepted, gin.H{"accepted": len(logs)})
}

// StreamErrors godoc
// @Summary Stream client errors via Server-Sent Events (SSE)
// @Description Stream error events in real time as they are reported, optionally filtered by severity
// @Tags errors
// @Produce text/event-stream
// @Security BearerAuth
// @Param severity query string false "Severity filter (info, warning, error, critical)" default(all)
// @Success 200 "SSE stream"
// @Router /api/v1/admin/errors/stream [get]
func (h *ErrorLogHandler) StreamErrors(c *gin.Context) {
	severity := c.DefaultQuery("severity", services.SubscribeAll)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable buffering for nginx

	clientChan := h.sseHub.RegisterClient(severity)
	defer h.sseHub.UnregisterClient(severity, clientChan)

	c.SSEvent("connected", gin.H{
		"severity": severity,
		"clients":  h.sseHub.GetClientCount(severity),
		"message":  "Connected to error stream",
	})
	c.Writer.Flush()

	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			logrus.Infof("Error stream client disconnected: severity=%s", severity)
			return
		case <-heartbeat.C:
			if _, err := c.Writer.Write([]byte(": heartbeat\n\n")); err != nil {
				return
			}
			c.Writer.Flush()
		case message, ok := <-clientChan:
			if !ok {
				return
			}
			if _, err := c.Writer.Write(message); err != nil {
				logrus.Errorf("Failed to write SSE message: %v", err)
				return
			}
			c.Writer.Flush()
		}
	}
}

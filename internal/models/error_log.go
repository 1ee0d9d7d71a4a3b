package models

import (
	"time"
)

// Client error severities
const (
	ErrorSeverityInfo     = "info"
	ErrorSeverityWarning  = "warning"
	ErrorSeverityError    = "error"
	ErrorSeverityCritical = "critical"
)

// ClientErrorLog represents an error reported by a browser client
type ClientErrorLog struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID     string    `json:"user_id,omitempty" gorm:"type:uuid;index"`
	Severity   string    `json:"severity" gorm:"type:varchar(20);not null;index"` // "info", "warning", "error", "critical"
	Category   string    `json:"category" gorm:"type:varchar(30);not null;index"` // "authentication", "database", "api", "network", "validation", "ui", "edge_function", "unknown"
	Message    string    `json:"message" gorm:"type:text;not null"`
	Stack      string    `json:"stack,omitempty" gorm:"type:text"`
	Context    JSON      `json:"context,omitempty" gorm:"type:jsonb"`
	UserAgent  string    `json:"user_agent,omitempty" gorm:"type:varchar(500)"`
	URL        string    `json:"url,omitempty" gorm:"type:varchar(500)"`
	OccurredAt time.Time `json:"occurred_at" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for the ClientErrorLog model
func (ClientErrorLog) TableName() string {
	return "client_error_logs"
}

// ClientErrorEntry is one reported error in an ingestion request
type ClientErrorEntry struct {
	Severity   string     `json:"severity" binding:"required,oneof=info warning error critical"`
	Category   string     `json:"category" binding:"required,oneof=authentication database api network validation ui edge_function unknown"`
	Message    string     `json:"message" binding:"required"`
	Stack      string     `json:"stack,omitempty"`
	Context    JSON       `json:"context,omitempty"`
	UserAgent  string     `json:"user_agent,omitempty"`
	URL        string     `json:"url,omitempty"`
	OccurredAt *time.Time `json:"occurred_at,omitempty"`
}

// ReportErrorsRequest represents a batch of client error reports
type ReportErrorsRequest struct {
	Errors []ClientErrorEntry `json:"errors" binding:"required,min=1,max=50,dive"`
}

// ErrorMetrics aggregates stored client errors for the admin dashboard
type ErrorMetrics struct {
	TotalErrors  int              `json:"total_errors"`
	BySeverity   map[string]int64 `json:"by_severity"`
	ByCategory   map[string]int64 `json:"by_category"`
	RecentErrors []ClientErrorLog `json:"recent_errors"`
}

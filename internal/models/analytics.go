package models

import (
	"time"
)

// AnalyticsRecord represents one metrics snapshot for a published item
type AnalyticsRecord struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID             string    `json:"user_id" gorm:"not null;index;type:uuid"`
	PublishedContentID string    `json:"published_content_id" gorm:"not null;index;type:uuid"`
	Views              int       `json:"views" gorm:"default:0"`
	Likes              int       `json:"likes" gorm:"default:0"`
	Shares             int       `json:"shares" gorm:"default:0"`
	Comments           int       `json:"comments" gorm:"default:0"`
	EngagementRate     float64   `json:"engagement_rate" gorm:"type:decimal(6,3);default:0"`
	ClickThroughRate   float64   `json:"click_through_rate" gorm:"type:decimal(6,3);default:0"`
	Metadata           JSON      `json:"metadata,omitempty" gorm:"type:jsonb"`
	RecordedAt         time.Time `json:"recorded_at"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Relationships
	User             User             `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	PublishedContent PublishedContent `json:"-" gorm:"foreignKey:PublishedContentID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the AnalyticsRecord model
func (AnalyticsRecord) TableName() string {
	return "analytics"
}

// RecordAnalyticsRequest represents the request to record metrics
type RecordAnalyticsRequest struct {
	PublishedContentID string     `json:"published_content_id" binding:"required,uuid"`
	Views              int        `json:"views" binding:"min=0"`
	Likes              int        `json:"likes" binding:"min=0"`
	Shares             int        `json:"shares" binding:"min=0"`
	Comments           int        `json:"comments" binding:"min=0"`
	EngagementRate     float64    `json:"engagement_rate" binding:"min=0"`
	ClickThroughRate   float64    `json:"click_through_rate" binding:"min=0"`
	RecordedAt         *time.Time `json:"recorded_at,omitempty"`
}

// AnalyticsSummary aggregates metrics across a user's published content
type AnalyticsSummary struct {
	TotalViews        int     `json:"total_views"`
	TotalLikes        int     `json:"total_likes"`
	TotalShares       int     `json:"total_shares"`
	TotalComments     int     `json:"total_comments"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	RecordCount       int     `json:"record_count"`
}

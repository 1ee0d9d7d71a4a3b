package models

import (
	"time"
)

// Publishing platforms supported for connections
var SupportedPlatforms = []string{"medium", "twitter", "linkedin", "bluesky", "substack", "dev", "hashnode"}

// Published content status values
const (
	PublishStatusPending   = "pending"
	PublishStatusPublished = "published"
	PublishStatusFailed    = "failed"
	PublishStatusScheduled = "scheduled"
)

// PublishingConnection represents a user's link to an external platform
type PublishingConnection struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID           string     `json:"user_id" gorm:"not null;index;type:uuid;uniqueIndex:idx_connections_user_platform"`
	Platform         string     `json:"platform" gorm:"type:varchar(20);not null;uniqueIndex:idx_connections_user_platform"` // "medium", "twitter", "linkedin", "bluesky", "substack", "dev", "hashnode"
	IsConnected      bool       `json:"is_connected" gorm:"default:false;index"`
	AccessToken      string     `json:"-" gorm:"type:text"`
	RefreshToken     string     `json:"-" gorm:"type:text"`
	TokenExpiresAt   *time.Time `json:"token_expires_at,omitempty"`
	PlatformUserID   string     `json:"platform_user_id,omitempty" gorm:"type:varchar(255)"`
	PlatformUsername string     `json:"platform_username,omitempty" gorm:"type:varchar(255)"`
	Metadata         JSON       `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the PublishingConnection model
func (PublishingConnection) TableName() string {
	return "publishing_connections"
}

// PublishedContent represents one publish attempt of a content item to a platform
type PublishedContent struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID         string     `json:"user_id" gorm:"not null;index;type:uuid"`
	ContentID      string     `json:"content_id" gorm:"not null;index;type:uuid"`
	Platform       string     `json:"platform" gorm:"type:varchar(20);not null;index"`
	PlatformPostID string     `json:"platform_post_id,omitempty" gorm:"type:varchar(255)"`
	PlatformURL    string     `json:"platform_url,omitempty" gorm:"type:varchar(500)"`
	Status         string     `json:"status" gorm:"type:varchar(20);default:'pending';index"` // "pending", "published", "failed", "scheduled"
	ScheduledFor   *time.Time `json:"scheduled_for,omitempty"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	ErrorMessage   string     `json:"error_message,omitempty" gorm:"type:text"`
	Metadata       JSON       `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relationships
	User    User    `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Content Content `json:"-" gorm:"foreignKey:ContentID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the PublishedContent model
func (PublishedContent) TableName() string {
	return "published_content"
}

// ConnectPlatformRequest represents the request to connect a platform
type ConnectPlatformRequest struct {
	Platform         string `json:"platform" binding:"required,oneof=medium twitter linkedin bluesky substack dev hashnode"`
	AccessToken      string `json:"access_token,omitempty"`
	PlatformUsername string `json:"platform_username,omitempty"`
}

// PublishContentRequest represents the request to publish a content item
type PublishContentRequest struct {
	Platforms    []string   `json:"platforms" binding:"required,min=1"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

// UpdatePublishStatusRequest represents a status report from the publish worker
type UpdatePublishStatusRequest struct {
	Status         string `json:"status" binding:"required,oneof=pending published failed scheduled"`
	PlatformPostID string `json:"platform_post_id,omitempty"`
	PlatformURL    string `json:"platform_url,omitempty"`
	ErrorMessage   string `json:"error_message,omitempty"`
}

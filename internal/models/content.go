package models

import (
	"time"
)

// Content type values
const (
	ContentTypeBlog    = "blog"
	ContentTypeSocial  = "social"
	ContentTypeScript  = "script"
	ContentTypeOutline = "outline"
	ContentTypeThread  = "thread"
	ContentTypeOther   = "other"
)

// Content status values
const (
	ContentStatusDraft     = "draft"
	ContentStatusReady     = "ready"
	ContentStatusPublished = "published"
	ContentStatusArchived  = "archived"
)

// Content represents a piece of long-form content owned by a user
type Content struct {
	ID             string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID         string      `json:"user_id" gorm:"not null;index;type:uuid"`
	Title          string      `json:"title" gorm:"type:varchar(200);not null"`
	ContentBody    string      `json:"content_body" gorm:"type:text"`
	ContentType    string      `json:"content_type" gorm:"type:varchar(20);not null;index"` // "blog", "social", "script", "outline", "thread", "other"
	Status         string      `json:"status" gorm:"type:varchar(20);default:'draft';index"`
	WordCount      int         `json:"word_count" gorm:"default:0"`
	CharacterCount int         `json:"character_count" gorm:"default:0"`
	Tags           StringArray `json:"tags" gorm:"type:jsonb"`
	TargetPlatform string      `json:"target_platform,omitempty" gorm:"type:varchar(50)"`
	Metadata       JSON        `json:"metadata,omitempty" gorm:"type:jsonb"`
	PublishedAt    *time.Time  `json:"published_at,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Content model
func (Content) TableName() string {
	return "content"
}

// CreateContentRequest represents the request to create content
type CreateContentRequest struct {
	Title          string   `json:"title" binding:"required,max=200"`
	ContentBody    string   `json:"content_body"`
	ContentType    string   `json:"content_type" binding:"required,oneof=blog social script outline thread other"`
	Status         string   `json:"status,omitempty" binding:"omitempty,oneof=draft ready published archived"`
	Tags           []string `json:"tags,omitempty"`
	TargetPlatform string   `json:"target_platform,omitempty"`
	Metadata       JSON     `json:"metadata,omitempty"`
}

// UpdateContentRequest represents the request to update content
type UpdateContentRequest struct {
	Title          *string  `json:"title,omitempty" binding:"omitempty,max=200"`
	ContentBody    *string  `json:"content_body,omitempty"`
	ContentType    *string  `json:"content_type,omitempty" binding:"omitempty,oneof=blog social script outline thread other"`
	Status         *string  `json:"status,omitempty" binding:"omitempty,oneof=draft ready published archived"`
	Tags           []string `json:"tags,omitempty"`
	TargetPlatform *string  `json:"target_platform,omitempty"`
	Metadata       JSON     `json:"metadata,omitempty"`
}

package models

import (
	"time"
)

// Idea represents a saved content idea
type Idea struct {
	ID                 string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID             string      `json:"user_id" gorm:"not null;index;type:uuid"`
	Title              string      `json:"title" gorm:"type:varchar(255);not null"`
	Description        string      `json:"description" gorm:"type:text;not null"`
	Category           string      `json:"category,omitempty" gorm:"type:varchar(100)"`
	Tags               StringArray `json:"tags" gorm:"type:jsonb"`
	ContentTypes       StringArray `json:"content_types" gorm:"type:jsonb"`
	SuggestedPlatforms StringArray `json:"suggested_platforms" gorm:"type:jsonb"`
	IsSaved            bool        `json:"is_saved" gorm:"default:false;index"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Idea model
func (Idea) TableName() string {
	return "ideas"
}

// CreateIdeaRequest represents the request to save an idea
type CreateIdeaRequest struct {
	Title              string   `json:"title" binding:"required,max=255"`
	Description        string   `json:"description" binding:"required"`
	Category           string   `json:"category,omitempty"`
	Tags               []string `json:"tags,omitempty"`
	ContentTypes       []string `json:"content_types,omitempty"`
	SuggestedPlatforms []string `json:"suggested_platforms,omitempty"`
	IsSaved            bool     `json:"is_saved,omitempty"`
}

// UpdateIdeaRequest represents the request to update an idea
type UpdateIdeaRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsSaved     *bool    `json:"is_saved,omitempty"`
}

package models

import (
	"time"
)

// UserPreference represents per-user application defaults
type UserPreference struct {
	ID                   string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID               string    `json:"user_id" gorm:"not null;unique;index;type:uuid"`
	Timezone             string    `json:"timezone" gorm:"type:varchar(50);default:'UTC'"`
	DefaultPlatform      string    `json:"default_platform" gorm:"type:varchar(50);default:'medium'"`
	DefaultContentType   string    `json:"default_content_type" gorm:"type:varchar(20);default:'blog'"`
	DefaultAIProvider    string    `json:"default_ai_provider" gorm:"type:varchar(20);default:'anthropic'"`
	WritingTone          string    `json:"writing_tone" gorm:"type:varchar(50);default:'professional'"`
	NotificationsEnabled bool      `json:"notifications_enabled" gorm:"default:true"`
	EmailNotifications   bool      `json:"email_notifications" gorm:"default:true"`
	Preferences          JSON      `json:"preferences,omitempty" gorm:"type:jsonb"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the UserPreference model
func (UserPreference) TableName() string {
	return "user_preferences"
}

// DefaultPreferences returns the preference row a new account starts with
func DefaultPreferences(userID string) *UserPreference {
	return &UserPreference{
		UserID:               userID,
		Timezone:             "UTC",
		DefaultPlatform:      "medium",
		DefaultContentType:   ContentTypeBlog,
		DefaultAIProvider:    ProviderAnthropic,
		WritingTone:          "professional",
		NotificationsEnabled: true,
		EmailNotifications:   true,
	}
}

// UpdatePreferencesRequest represents the request to update preferences
type UpdatePreferencesRequest struct {
	Timezone             *string `json:"timezone,omitempty" binding:"omitempty,max=50"`
	DefaultPlatform      *string `json:"default_platform,omitempty" binding:"omitempty,max=50"`
	DefaultContentType   *string `json:"default_content_type,omitempty" binding:"omitempty,oneof=blog social script outline thread other"`
	DefaultAIProvider    *string `json:"default_ai_provider,omitempty" binding:"omitempty,oneof=anthropic openai google other"`
	WritingTone          *string `json:"writing_tone,omitempty" binding:"omitempty,max=50"`
	NotificationsEnabled *bool   `json:"notifications_enabled,omitempty"`
	EmailNotifications   *bool   `json:"email_notifications,omitempty"`
	Preferences          JSON    `json:"preferences,omitempty"`
}

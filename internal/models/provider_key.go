package models

import (
	"time"
)

// AI providers a key can belong to
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGoogle    = "google"
	ProviderOther     = "other"
)

// ProviderKey represents a user-supplied API key for an AI provider.
// The key material is stored reversibly encoded, never returned to clients.
type ProviderKey struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID     string     `json:"user_id" gorm:"not null;index;type:uuid;uniqueIndex:idx_provider_keys_user_provider_name"`
	Provider   string     `json:"provider" gorm:"type:varchar(20);not null;uniqueIndex:idx_provider_keys_user_provider_name"` // "anthropic", "openai", "google", "other"
	KeyName    string     `json:"key_name" gorm:"type:varchar(100);not null;uniqueIndex:idx_provider_keys_user_provider_name"`
	EncodedKey string     `json:"-" gorm:"type:text;not null"`
	IsActive   bool       `json:"is_active" gorm:"default:true;index"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ProviderKey model
func (ProviderKey) TableName() string {
	return "provider_keys"
}

// SaveProviderKeyRequest represents the request to store a provider key
type SaveProviderKeyRequest struct {
	Provider string `json:"provider" binding:"required,oneof=anthropic openai google other"`
	KeyName  string `json:"key_name" binding:"required,max=100"`
	APIKey   string `json:"api_key" binding:"required"`
}

// ToggleProviderKeyRequest represents the request to activate or deactivate a key
type ToggleProviderKeyRequest struct {
	IsActive bool `json:"is_active"`
}

// ProviderKeyResponse is the client-facing view of a stored key
type ProviderKeyResponse struct {
	ID         string     `json:"id"`
	Provider   string     `json:"provider"`
	KeyName    string     `json:"key_name"`
	IsActive   bool       `json:"is_active"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

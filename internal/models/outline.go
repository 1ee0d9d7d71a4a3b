package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// OutlineSection is one section of a generated outline
type OutlineSection struct {
	ID        int      `json:"id"`
	Heading   string   `json:"heading"`
	KeyPoints []string `json:"keyPoints"`
}

// OutlineSections is the JSONB-backed list of sections
type OutlineSections []OutlineSection

// Value implements driver.Valuer for JSONB columns
func (s OutlineSections) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB columns
func (s *OutlineSections) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for outline sections column: %T", value)
	}

	return json.Unmarshal(data, s)
}

// Outline represents a structured content outline
type Outline struct {
	ID               string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID           string          `json:"user_id" gorm:"not null;index;type:uuid"`
	Title            string          `json:"title" gorm:"type:varchar(255);not null"`
	Hook             string          `json:"hook" gorm:"type:text;not null"`
	HookAlternatives StringArray     `json:"hook_alternatives" gorm:"type:jsonb"`
	Sections         OutlineSections `json:"sections" gorm:"type:jsonb"`
	CTA              string          `json:"cta,omitempty" gorm:"type:text"`
	Status           string          `json:"status" gorm:"type:varchar(20);default:'draft';index"` // "draft", "ready", "archived"
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Outline model
func (Outline) TableName() string {
	return "outlines"
}

// CreateOutlineRequest represents the request to save an outline
type CreateOutlineRequest struct {
	Title            string           `json:"title" binding:"required,max=255"`
	Hook             string           `json:"hook" binding:"required"`
	HookAlternatives []string         `json:"hook_alternatives,omitempty"`
	Sections         []OutlineSection `json:"sections,omitempty"`
	CTA              string           `json:"cta,omitempty"`
	Status           string           `json:"status,omitempty" binding:"omitempty,oneof=draft ready archived"`
}

// UpdateOutlineRequest represents the request to update an outline
type UpdateOutlineRequest struct {
	Title            *string          `json:"title,omitempty" binding:"omitempty,max=255"`
	Hook             *string          `json:"hook,omitempty"`
	HookAlternatives []string         `json:"hook_alternatives,omitempty"`
	Sections         []OutlineSection `json:"sections,omitempty"`
	CTA              *string          `json:"cta,omitempty"`
	Status           *string          `json:"status,omitempty" binding:"omitempty,oneof=draft ready archived"`
}

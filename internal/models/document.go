package models

import (
	"time"
)

// Document represents a knowledge-base document's metadata.
// The binary itself lives in object storage; only the descriptor is kept here.
type Document struct {
	ID          string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      string      `json:"user_id" gorm:"not null;index;type:uuid"`
	Title       string      `json:"title" gorm:"type:varchar(255);not null"`
	FileName    string      `json:"file_name" gorm:"type:varchar(255);not null"`
	FilePath    string      `json:"file_path" gorm:"type:varchar(500);not null"`
	FileType    string      `json:"file_type" gorm:"type:varchar(100);not null"`
	FileSize    int64       `json:"file_size" gorm:"not null"`
	Description string      `json:"description,omitempty" gorm:"type:text"`
	Tags        StringArray `json:"tags" gorm:"type:jsonb"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Document model
func (Document) TableName() string {
	return "knowledge_base_documents"
}

// CreateDocumentRequest represents the request to register a document
type CreateDocumentRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	FileName    string   `json:"file_name" binding:"required,max=255"`
	FilePath    string   `json:"file_path" binding:"required,max=500"`
	FileType    string   `json:"file_type" binding:"required,max=100"`
	FileSize    int64    `json:"file_size" binding:"required,min=1"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateDocumentRequest represents the request to update document metadata
type UpdateDocumentRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string  `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

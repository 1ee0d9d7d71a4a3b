package services

import (
	"errors"
	"fmt"

	"github.com/contentflowhq/contentflow-backend/internal/database/repository"
	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/utils"

	"gorm.io/gorm"
)

type DocumentService struct {
	documentRepo *repository.DocumentRepository
}

func NewDocumentService(documentRepo *repository.DocumentRepository) *DocumentService {
	return &DocumentService{documentRepo: documentRepo}
}

// RegisterDocument records the metadata of an uploaded knowledge-base file
func (s *DocumentService) RegisterDocument(userID string, req *models.CreateDocumentRequest) (*models.Document, error) {
	if err := utils.ValidateTags(req.Tags); err != nil {
		return nil, err
	}

	doc := &models.Document{
		UserID:      userID,
		Title:       utils.SanitizeUserInput(req.Title),
		FileName:    utils.SanitizeFileName(req.FileName),
		FilePath:    req.FilePath,
		FileType:    req.FileType,
		FileSize:    req.FileSize,
		Description: utils.SanitizeUserInput(req.Description),
		Tags:        req.Tags,
	}

	if err := s.documentRepo.Create(doc); err != nil {
		return nil, fmt.Errorf("failed to register document: %w", err)
	}

	return doc, nil
}

// GetDocument returns one document scoped to its owner
func (s *DocumentService) GetDocument(id, userID string) (*models.Document, error) {
	doc, err := s.documentRepo.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// ListDocuments lists a user's documents
func (s *DocumentService) ListDocuments(userID string) ([]*models.Document, error) {
	docs, err := s.documentRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, nil
}

// UpdateDocument applies a partial metadata update to a document
func (s *DocumentService) UpdateDocument(id, userID string, req *models.UpdateDocumentRequest) (*models.Document, error) {
	doc, err := s.GetDocument(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		doc.Title = utils.SanitizeUserInput(*req.Title)
	}
	if req.Description != nil {
		doc.Description = utils.SanitizeUserInput(*req.Description)
	}
	if req.Tags != nil {
		if err := utils.ValidateTags(req.Tags); err != nil {
			return nil, err
		}
		doc.Tags = req.Tags
	}

	if err := s.documentRepo.Update(doc); err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	return doc, nil
}

// DeleteDocument removes a document record scoped to its owner
func (s *DocumentService) DeleteDocument(id, userID string) error {
	if err := s.documentRepo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

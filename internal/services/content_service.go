package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/contentflowhq/contentflow-backend/internal/database/repository"
	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/utils"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type ContentService struct {
	contentRepo *repository.ContentRepository
}

func NewContentService(contentRepo *repository.ContentRepository) *ContentService {
	return &ContentService{contentRepo: contentRepo}
}

// CreateContent creates a content item owned by userID
func (s *ContentService) CreateContent(userID string, req *models.CreateContentRequest) (*models.Content, error) {
	if err := utils.ValidateContentTitle(req.Title); err != nil {
		return nil, err
	}
	if req.ContentBody != "" {
		if err := utils.ValidateContentBody(req.ContentBody); err != nil {
			return nil, err
		}
	}
	if err := utils.ValidateTags(req.Tags); err != nil {
		return nil, err
	}

	body := utils.SanitizeMarkdown(req.ContentBody)

	status := req.Status
	if status == "" {
		status = models.ContentStatusDraft
	}

	content := &models.Content{
		UserID:         userID,
		Title:          utils.SanitizeUserInput(req.Title),
		ContentBody:    body,
		ContentType:    req.ContentType,
		Status:         status,
		WordCount:      countWords(body),
		CharacterCount: utf8.RuneCountInString(body),
		Tags:           req.Tags,
		TargetPlatform: req.TargetPlatform,
		Metadata:       req.Metadata,
	}

	if content.Status == models.ContentStatusPublished {
		now := time.Now()
		content.PublishedAt = &now
	}

	if err := s.contentRepo.Create(content); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}

	return content, nil
}

// GetContent returns one content item scoped to its owner
func (s *ContentService) GetContent(id, userID string) (*models.Content, error) {
	content, err := s.contentRepo.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return content, nil
}

// ListContent lists a user's content with optional status filter and pagination
func (s *ContentService) ListContent(userID, status string, page, pageSize int) ([]*models.Content, int64, error) {
	page, pageSize = utils.ValidateAndNormalizePagination(page, pageSize)

	items, total, err := s.contentRepo.GetByUserID(userID, status, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list content: %w", err)
	}
	return items, total, nil
}

// UpdateContent applies a partial update to a content item
func (s *ContentService) UpdateContent(id, userID string, req *models.UpdateContentRequest) (*models.Content, error) {
	content, err := s.GetContent(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := utils.ValidateContentTitle(*req.Title); err != nil {
			return nil, err
		}
		content.Title = utils.SanitizeUserInput(*req.Title)
	}
	if req.ContentBody != nil {
		if *req.ContentBody != "" {
			if err := utils.ValidateContentBody(*req.ContentBody); err != nil {
				return nil, err
			}
		}
		body := utils.SanitizeMarkdown(*req.ContentBody)
		content.ContentBody = body
		content.WordCount = countWords(body)
		content.CharacterCount = utf8.RuneCountInString(body)
	}
	if req.ContentType != nil {
		content.ContentType = *req.ContentType
	}
	if req.Status != nil {
		// Stamp the first transition into published
		if *req.Status == models.ContentStatusPublished && content.Status != models.ContentStatusPublished {
			now := time.Now()
			content.PublishedAt = &now
		}
		content.Status = *req.Status
	}
	if req.Tags != nil {
		if err := utils.ValidateTags(req.Tags); err != nil {
			return nil, err
		}
		content.Tags = req.Tags
	}
	if req.TargetPlatform != nil {
		content.TargetPlatform = *req.TargetPlatform
	}
	if req.Metadata != nil {
		content.Metadata = req.Metadata
	}

	if err := s.contentRepo.Update(content); err != nil {
		return nil, fmt.Errorf("failed to update content: %w", err)
	}

	return content, nil
}

// DeleteContent removes a content item scoped to its owner
func (s *ContentService) DeleteContent(id, userID string) error {
	if err := s.contentRepo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete content: %w", err)
	}
	return nil
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

package services

import (
	"errors"
	"fmt"

	"github.com/contentflowhq/contentflow-backend/internal/database/repository"
	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/utils"

	"gorm.io/gorm"
)

type OutlineService struct {
	outlineRepo *repository.OutlineRepository
}

func NewOutlineService(outlineRepo *repository.OutlineRepository) *OutlineService {
	return &OutlineService{outlineRepo: outlineRepo}
}

// SaveOutline stores a structured outline, typically one the AI generated
func (s *OutlineService) SaveOutline(userID string, req *models.CreateOutlineRequest) (*models.Outline, error) {
	status := req.Status
	if status == "" {
		status = models.ContentStatusDraft
	}

	outline := &models.Outline{
		UserID:           userID,
		Title:            utils.SanitizeUserInput(req.Title),
		Hook:             utils.SanitizeUserInput(req.Hook),
		HookAlternatives: req.HookAlternatives,
		Sections:         req.Sections,
		CTA:              req.CTA,
		Status:           status,
	}

	if err := s.outlineRepo.Create(outline); err != nil {
		return nil, fmt.Errorf("failed to save outline: %w", err)
	}

	return outline, nil
}

// GetOutline returns one outline scoped to its owner
func (s *OutlineService) GetOutline(id, userID string) (*models.Outline, error) {
	outline, err := s.outlineRepo.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get outline: %w", err)
	}
	return outline, nil
}

// ListOutlines lists a user's outlines
func (s *OutlineService) ListOutlines(userID string) ([]*models.Outline, error) {
	outlines, err := s.outlineRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list outlines: %w", err)
	}
	return outlines, nil
}

// UpdateOutline applies a partial update to an outline
func (s *OutlineService) UpdateOutline(id, userID string, req *models.UpdateOutlineRequest) (*models.Outline, error) {
	outline, err := s.GetOutline(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		outline.Title = utils.SanitizeUserInput(*req.Title)
	}
	if req.Hook != nil {
		outline.Hook = utils.SanitizeUserInput(*req.Hook)
	}
	if req.HookAlternatives != nil {
		outline.HookAlternatives = req.HookAlternatives
	}
	if req.Sections != nil {
		outline.Sections = req.Sections
	}
	if req.CTA != nil {
		outline.CTA = *req.CTA
	}
	if req.Status != nil {
		outline.Status = *req.Status
	}

	if err := s.outlineRepo.Update(outline); err != nil {
		return nil, fmt.Errorf("failed to update outline: %w", err)
	}

	return outline, nil
}

// DeleteOutline removes an outline scoped to its owner
func (s *OutlineService) DeleteOutline(id, userID string) error {
	if err := s.outlineRepo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete outline: %w", err)
	}
	return nil
}

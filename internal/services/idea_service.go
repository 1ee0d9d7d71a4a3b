package services

import (
	"errors"
	"fmt"

	"github.com/contentflowhq/contentflow-backend/internal/database/repository"
	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/utils"

	"gorm.io/gorm"
)

type IdeaService struct {
	ideaRepo *repository.IdeaRepository
}

func NewIdeaService(ideaRepo *repository.IdeaRepository) *IdeaService {
	return &IdeaService{ideaRepo: ideaRepo}
}

// SaveIdea stores an idea for later, typically one picked from a generation run
func (s *IdeaService) SaveIdea(userID string, req *models.CreateIdeaRequest) (*models.Idea, error) {
	if err := utils.ValidateTags(req.Tags); err != nil {
		return nil, err
	}

	idea := &models.Idea{
		UserID:             userID,
		Title:              utils.SanitizeUserInput(req.Title),
		Description:        utils.SanitizeUserInput(req.Description),
		Category:           req.Category,
		Tags:               req.Tags,
		ContentTypes:       req.ContentTypes,
		SuggestedPlatforms: req.SuggestedPlatforms,
		IsSaved:            req.IsSaved,
	}

	if err := s.ideaRepo.Create(idea); err != nil {
		return nil, fmt.Errorf("failed to save idea: %w", err)
	}

	return idea, nil
}

// GetIdea returns one idea scoped to its owner
func (s *IdeaService) GetIdea(id, userID string) (*models.Idea, error) {
	idea, err := s.ideaRepo.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get idea: %w", err)
	}
	return idea, nil
}

// ListIdeas lists a user's ideas, optionally only the saved ones
func (s *IdeaService) ListIdeas(userID string, savedOnly bool) ([]*models.Idea, error) {
	ideas, err := s.ideaRepo.GetByUserID(userID, savedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	return ideas, nil
}

// UpdateIdea applies a partial update to an idea
func (s *IdeaService) UpdateIdea(id, userID string, req *models.UpdateIdeaRequest) (*models.Idea, error) {
	idea, err := s.GetIdea(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		idea.Title = utils.SanitizeUserInput(*req.Title)
	}
	if req.Description != nil {
		idea.Description = utils.SanitizeUserInput(*req.Description)
	}
	if req.Category != nil {
		idea.Category = *req.Category
	}
	if req.Tags != nil {
		if err := utils.ValidateTags(req.Tags); err != nil {
			return nil, err
		}
		idea.Tags = req.Tags
	}
	if req.IsSaved != nil {
		idea.IsSaved = *req.IsSaved
	}

	if err := s.ideaRepo.Update(idea); err != nil {
		return nil, fmt.Errorf("failed to update idea: %w", err)
	}

	return idea, nil
}

// DeleteIdea removes an idea scoped to its owner
func (s *IdeaService) DeleteIdea(id, userID string) error {
	if err := s.ideaRepo.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete idea: %w", err)
	}
	return nil
}

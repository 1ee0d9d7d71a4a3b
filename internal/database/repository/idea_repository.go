package repository

import (
	"github.com/contentflowhq/contentflow-backend/internal/models"
	"gorm.io/gorm"
)

type IdeaRepository struct {
	db *gorm.DB
}

func NewIdeaRepository(db *gorm.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

// Create creates a new idea
func (r *IdeaRepository) Create(idea *models.Idea) error {
	return r.db.Create(idea).Error
}

// GetByID retrieves an idea owned by the user
func (r *IdeaRepository) GetByID(id, userID string) (*models.Idea, error) {
	var idea models.Idea
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&idea).Error
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// GetByUserID retrieves ideas for a user, newest first
func (r *IdeaRepository) GetByUserID(userID string, savedOnly bool) ([]*models.Idea, error) {
	var ideas []*models.Idea
	query := r.db.Where("user_id = ?", userID)
	if savedOnly {
		query = query.Where("is_saved = ?", true)
	}
	err := query.Order("created_at DESC").Find(&ideas).Error
	return ideas, err
}

// Update updates an idea
func (r *IdeaRepository) Update(idea *models.Idea) error {
	return r.db.Save(idea).Error
}

// Delete deletes an idea owned by the user
func (r *IdeaRepository) Delete(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Idea{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

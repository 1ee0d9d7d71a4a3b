package repository

import (
	"github.com/contentflowhq/contentflow-backend/internal/models"
	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Create records a metrics snapshot
func (r *AnalyticsRepository) Create(record *models.AnalyticsRecord) error {
	return r.db.Create(record).Error
}

// GetByUserID retrieves analytics records for a user, newest first
func (r *AnalyticsRepository) GetByUserID(userID string) ([]*models.AnalyticsRecord, error) {
	var records []*models.AnalyticsRecord
	err := r.db.Where("user_id = ?", userID).Order("recorded_at DESC").Find(&records).Error
	return records, err
}

// GetByPublishedContentID retrieves snapshots for one published item
func (r *AnalyticsRepository) GetByPublishedContentID(publishedContentID, userID string) ([]*models.AnalyticsRecord, error) {
	var records []*models.AnalyticsRecord
	err := r.db.Where("published_content_id = ? AND user_id = ?", publishedContentID, userID).
		Order("recorded_at DESC").Find(&records).Error
	return records, err
}

// Summarize aggregates a user's analytics into totals and averages
func (r *AnalyticsRepository) Summarize(userID string) (*models.AnalyticsSummary, error) {
	var summary models.AnalyticsSummary
	err := r.db.Model(&models.AnalyticsRecord{}).
		Select(`COALESCE(SUM(views), 0) AS total_views,
			COALESCE(SUM(likes), 0) AS total_likes,
			COALESCE(SUM(shares), 0) AS total_shares,
			COALESCE(SUM(comments), 0) AS total_comments,
			COALESCE(AVG(engagement_rate), 0) AS avg_engagement_rate,
			COUNT(*) AS record_count`).
		Where("user_id = ?", userID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

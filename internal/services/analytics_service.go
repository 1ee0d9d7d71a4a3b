package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/contentflowhq/contentflow-backend/internal/database/repository"
	"github.com/contentflowhq/contentflow-backend/internal/models"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	analyticsRepo *repository.AnalyticsRepository
	publishedRepo *repository.PublishedContentRepository
}

func NewAnalyticsService(
	analyticsRepo *repository.AnalyticsRepository,
	publishedRepo *repository.PublishedContentRepository,
) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		publishedRepo: publishedRepo,
	}
}

// RecordMetrics stores one metrics snapshot for a publish record the
// caller owns
func (s *AnalyticsService) RecordMetrics(userID string, req *models.RecordAnalyticsRequest) (*models.AnalyticsRecord, error) {
	// The publish record must belong to the caller
	if _, err := s.publishedRepo.GetByID(req.PublishedContentID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get publish record: %w", err)
	}

	recordedAt := time.Now()
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	record := &models.AnalyticsRecord{
		UserID:             userID,
		PublishedContentID: req.PublishedContentID,
		Views:              req.Views,
		Likes:              req.Likes,
		Shares:             req.Shares,
		Comments:           req.Comments,
		EngagementRate:     req.EngagementRate,
		ClickThroughRate:   req.ClickThroughRate,
		RecordedAt:         recordedAt,
	}

	if err := s.analyticsRepo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to record analytics: %w", err)
	}

	return record, nil
}

// ListMetrics lists a user's snapshots, optionally for one publish record
func (s *AnalyticsService) ListMetrics(userID, publishedContentID string) ([]*models.AnalyticsRecord, error) {
	var (
		records []*models.AnalyticsRecord
		err     error
	)
	if publishedContentID != "" {
		records, err = s.analyticsRepo.GetByPublishedContentID(publishedContentID, userID)
	} else {
		records, err = s.analyticsRepo.GetByUserID(userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list analytics: %w", err)
	}
	return records, nil
}

// Summarize aggregates a user's metrics across everything they published
func (s *AnalyticsService) Summarize(userID string) (*models.AnalyticsSummary, error) {
	summary, err := s.analyticsRepo.Summarize(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize analytics: %w", err)
	}
	return summary, nil
}

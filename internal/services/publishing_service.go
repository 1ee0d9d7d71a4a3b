package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/contentflowhq/contentflow-backend/internal/database/repository"
	"github.com/contentflowhq/contentflow-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// JobPublisher enqueues publish jobs for the out-of-process worker
type JobPublisher interface {
	PublishMessage(queueName string, message map[string]interface{}) error
}

type PublishingService struct {
	connectionRepo *repository.ConnectionRepository
	publishedRepo  *repository.PublishedContentRepository
	contentRepo    *repository.ContentRepository
	jobs           JobPublisher
}

func NewPublishingService(
	connectionRepo *repository.ConnectionRepository,
	publishedRepo *repository.PublishedContentRepository,
	contentRepo *repository.ContentRepository,
	jobs JobPublisher,
) *PublishingService {
	return &PublishingService{
		connectionRepo: connectionRepo,
		publishedRepo:  publishedRepo,
		contentRepo:    contentRepo,
		jobs:           jobs,
	}
}

// ConnectPlatform stores or refreshes a user's platform connection
func (s *PublishingService) ConnectPlatform(userID string, req *models.ConnectPlatformRequest) (*models.PublishingConnection, error) {
	conn := &models.PublishingConnection{
		UserID:           userID,
		Platform:         req.Platform,
		IsConnected:      true,
		AccessToken:      req.AccessToken,
		PlatformUsername: req.PlatformUsername,
	}

	if err := s.connectionRepo.Upsert(conn); err != nil {
		return nil, fmt.Errorf("failed to connect platform: %w", err)
	}

	return conn, nil
}

// ListConnections lists a user's platform connections
func (s *PublishingService) ListConnections(userID string) ([]*models.PublishingConnection, error) {
	conns, err := s.connectionRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	return conns, nil
}

// DisconnectPlatform drops a platform connection and clears its tokens
func (s *PublishingService) DisconnectPlatform(userID, platform string) error {
	if err := s.connectionRepo.Disconnect(userID, platform); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to disconnect platform: %w", err)
	}
	return nil
}

// PublishContent creates one publish record per requested platform and
// enqueues a job for each. A platform without an active connection gets
// a failed record instead of a job.
func (s *PublishingService) PublishContent(userID, contentID string, req *models.PublishContentRequest) ([]*models.PublishedContent, error) {
	content, err := s.contentRepo.GetByID(contentID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}

	records := make([]*models.PublishedContent, 0, len(req.Platforms))
	for _, platform := range req.Platforms {
		record := &models.PublishedContent{
			UserID:       userID,
			ContentID:    content.ID,
			Platform:     platform,
			Status:       models.PublishStatusPending,
			ScheduledFor: req.ScheduledFor,
		}
		if req.ScheduledFor != nil && req.ScheduledFor.After(time.Now()) {
			record.Status = models.PublishStatusScheduled
		}

		conn, connErr := s.connectionRepo.GetByPlatform(userID, platform)
		if connErr != nil || !conn.IsConnected {
			record.Status = models.PublishStatusFailed
			record.ErrorMessage = fmt.Sprintf("platform %s is not connected", platform)
		}

		if err := s.publishedRepo.Create(record); err != nil {
			return nil, fmt.Errorf("failed to create publish record: %w", err)
		}

		if record.Status != models.PublishStatusFailed {
			s.enqueueJob(record)
		}

		records = append(records, record)
	}

	return records, nil
}

// enqueueJob hands a publish record to the worker queue. Queue failures
// mark the record failed rather than aborting the request.
func (s *PublishingService) enqueueJob(record *models.PublishedContent) {
	if s.jobs == nil {
		return
	}

	message := map[string]interface{}{
		"published_content_id": record.ID,
		"content_id":           record.ContentID,
		"user_id":              record.UserID,
		"platform":             record.Platform,
	}
	if record.ScheduledFor != nil {
		message["scheduled_for"] = record.ScheduledFor.Format(time.RFC3339)
	}

	if err := s.jobs.PublishMessage(PublishQueueName, message); err != nil {
		logrus.Errorf("Failed to enqueue publish job for record %s: %v", record.ID, err)
		record.Status = models.PublishStatusFailed
		record.ErrorMessage = "failed to enqueue publish job"
		if updateErr := s.publishedRepo.Update(record); updateErr != nil {
			logrus.Errorf("Failed to mark publish record %s failed: %v", record.ID, updateErr)
		}
	}
}

// ListPublished lists a user's publish records, optionally for one content item
func (s *PublishingService) ListPublished(userID, contentID string) ([]*models.PublishedContent, error) {
	var (
		records []*models.PublishedContent
		err     error
	)
	if contentID != "" {
		records, err = s.publishedRepo.GetByContentID(contentID, userID)
	} else {
		records, err = s.publishedRepo.GetByUserID(userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list published content: %w", err)
	}
	return records, nil
}

// UpdatePublishStatus records the outcome the publish worker reports back
func (s *PublishingService) UpdatePublishStatus(id, userID string, req *models.UpdatePublishStatusRequest) (*models.PublishedContent, error) {
	record, err := s.publishedRepo.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get publish record: %w", err)
	}

	record.Status = req.Status
	record.PlatformPostID = req.PlatformPostID
	record.PlatformURL = req.PlatformURL
	record.ErrorMessage = req.ErrorMessage

	if req.Status == models.PublishStatusPublished {
		now := time.Now()
		record.PublishedAt = &now
	}

	if err := s.publishedRepo.Update(record); err != nil {
		return nil, fmt.Errorf("failed to update publish record: %w", err)
	}

	return record, nil
}

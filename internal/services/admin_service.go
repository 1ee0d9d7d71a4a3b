package services

import (
	"fmt"
	"time"

	"github.com/contentflowhq/contentflow-backend/internal/database/repository"
	"github.com/contentflowhq/contentflow-backend/internal/models"
	"github.com/contentflowhq/contentflow-backend/internal/services/ai"
)

// SystemStats is the admin dashboard's headline view
type SystemStats struct {
	TotalUsers         int64 `json:"total_users"`
	ActiveUsers        int64 `json:"active_users"`
	TotalContent       int64 `json:"total_content"`
	ContentLast7Days   int64 `json:"content_last_7_days"`
	TotalDocuments     int64 `json:"total_documents"`
	AIFallbacksServed  int64 `json:"ai_fallbacks_served"`
	ClientErrorsStored int64 `json:"client_errors_stored"`
}

type AdminService struct {
	userRepo     *repository.UserRepository
	contentRepo  *repository.ContentRepository
	documentRepo *repository.DocumentRepository
	errorLogRepo *repository.ErrorLogRepository
}

func NewAdminService(
	userRepo *repository.UserRepository,
	contentRepo *repository.ContentRepository,
	documentRepo *repository.DocumentRepository,
	errorLogRepo *repository.ErrorLogRepository,
) *AdminService {
	return &AdminService{
		userRepo:     userRepo,
		contentRepo:  contentRepo,
		documentRepo: documentRepo,
		errorLogRepo: errorLogRepo,
	}
}

// GetSystemStats assembles the admin dashboard counters
func (s *AdminService) GetSystemStats() (*SystemStats, error) {
	totalUsers, activeUsers, err := s.userRepo.CountUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	totalContent, err := s.contentRepo.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count content: %w", err)
	}

	recentContent, err := s.contentRepo.CountCreatedSince(time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent content: %w", err)
	}

	totalDocuments, err := s.documentRepo.CountAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	bySeverity, err := s.errorLogRepo.CountBySeverity()
	if err != nil {
		return nil, fmt.Errorf("failed to count client errors: %w", err)
	}
	var storedErrors int64
	for _, count := range bySeverity {
		storedErrors += count
	}

	return &SystemStats{
		TotalUsers:         totalUsers,
		ActiveUsers:        activeUsers,
		TotalContent:       totalContent,
		ContentLast7Days:   recentContent,
		TotalDocuments:     totalDocuments,
		AIFallbacksServed:  ai.FallbackCount(),
		ClientErrorsStored: storedErrors,
	}, nil
}

// GetErrorMetrics aggregates stored client errors for the admin dashboard
func (s *AdminService) GetErrorMetrics(recentLimit int) (*models.ErrorMetrics, error) {
	if recentLimit <= 0 || recentLimit > 100 {
		recentLimit = 20
	}

	bySeverity, err := s.errorLogRepo.CountBySeverity()
	if err != nil {
		return nil, fmt.Errorf("failed to count errors by severity: %w", err)
	}

	byCategory, err := s.errorLogRepo.CountByCategory()
	if err != nil {
		return nil, fmt.Errorf("failed to count errors by category: %w", err)
	}

	recent, err := s.errorLogRepo.GetRecent(recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent errors: %w", err)
	}

	var total int64
	for _, count := range bySeverity {
		total += count
	}

	return &models.ErrorMetrics{
		TotalErrors:  int(total),
		BySeverity:   bySeverity,
		ByCategory:   byCategory,
		RecentErrors: recent,
	}, nil
}

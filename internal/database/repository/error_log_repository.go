package repository

import (
	"time"

	"github.com/contentflowhq/contentflow-backend/internal/models"
	"gorm.io/gorm"
)

type ErrorLogRepository struct {
	db *gorm.DB
}

func NewErrorLogRepository(db *gorm.DB) *ErrorLogRepository {
	return &ErrorLogRepository{db: db}
}

// CreateBatch stores a batch of client error logs in one insert
func (r *ErrorLogRepository) CreateBatch(logs []*models.ClientErrorLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.Create(logs).Error
}

// GetRecent retrieves the most recent error logs
func (r *ErrorLogRepository) GetRecent(limit int) ([]models.ClientErrorLog, error) {
	var logs []models.ClientErrorLog
	err := r.db.Order("occurred_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

// CountBySeverity counts stored errors grouped by severity
func (r *ErrorLogRepository) CountBySeverity() (map[string]int64, error) {
	return r.countGrouped("severity")
}

// CountByCategory counts stored errors grouped by category
func (r *ErrorLogRepository) CountByCategory() (map[string]int64, error) {
	return r.countGrouped("category")
}

func (r *ErrorLogRepository) countGrouped(column string) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}
	var rows []row
	err := r.db.Model(&models.ClientErrorLog{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Key] = rw.Count
	}
	return counts, nil
}

// DeleteOlderThan removes error logs that occurred before the cutoff
func (r *ErrorLogRepository) DeleteOlderThan(cutoff time.Time) error {
	return r.db.Where("occurred_at < ?", cutoff).Delete(&models.ClientErrorLog{}).Error
}

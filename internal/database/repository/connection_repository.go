package repository

import (
	"github.com/contentflowhq/contentflow-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConnectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

// Upsert creates or updates the connection for (user, platform)
func (r *ConnectionRepository) Upsert(conn *models.PublishingConnection) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"is_connected", "access_token", "refresh_token", "token_expires_at",
			"platform_user_id", "platform_username", "metadata", "updated_at",
		}),
	}).Create(conn).Error
}

// GetByUserID retrieves all platform connections for a user
func (r *ConnectionRepository) GetByUserID(userID string) ([]*models.PublishingConnection, error) {
	var conns []*models.PublishingConnection
	err := r.db.Where("user_id = ?", userID).Order("platform ASC").Find(&conns).Error
	return conns, err
}

// GetByPlatform retrieves a user's connection to one platform
func (r *ConnectionRepository) GetByPlatform(userID, platform string) (*models.PublishingConnection, error) {
	var conn models.PublishingConnection
	err := r.db.Where("user_id = ? AND platform = ?", userID, platform).First(&conn).Error
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

// Disconnect marks the connection as disconnected and clears its tokens
func (r *ConnectionRepository) Disconnect(userID, platform string) error {
	result := r.db.Model(&models.PublishingConnection{}).
		Where("user_id = ? AND platform = ?", userID, platform).
		Updates(map[string]interface{}{
			"is_connected":  false,
			"access_token":  "",
			"refresh_token": "",
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

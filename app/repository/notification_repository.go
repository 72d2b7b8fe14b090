package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/subkeeper/subkeeper/app/models"
)

// notificationRepository implements the NotificationRepository interface
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository instance
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create stores a new notification
func (r *notificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByUserID retrieves a paginated list of a user's notifications, newest first
func (r *notificationRepository) GetByUserID(userID uint, offset, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

// CountUnread returns the number of unread notifications for a user
func (r *notificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkAllRead marks all of a user's notifications as read
func (r *notificationRepository) MarkAllRead(userID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// ExistsForReferenceSince reports whether a notification for the given
// reference was already created after the given time. Used to avoid sending
// duplicate payment reminders for the same billing period.
func (r *notificationRepository) ExistsForReferenceSince(userID, referenceID uint, since time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND reference_id = ? AND created_at >= ?", userID, referenceID, since).
		Count(&count).Error
	return count > 0, err
}

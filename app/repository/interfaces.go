package repository

import (
	"time"

	"github.com/subkeeper/subkeeper/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByAPITokenHash(hash string) (*models.User, *models.UserSettings, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	TouchLastLogin(id uint, at time.Time) error
}

// SubscriptionRepository defines the interface for subscription-related database operations
type SubscriptionRepository interface {
	Create(sub *models.Subscription) error
	GetByID(id uint) (*models.Subscription, error)
	GetByUserID(userID uint) ([]models.Subscription, error)
	GetActiveByUserID(userID uint) ([]models.Subscription, error)
	GetDueWithin(start, end time.Time) ([]models.Subscription, error)
	Update(sub *models.Subscription) error
	Delete(id uint) error
	Count() (int64, error)
	CountByUserID(userID uint) (int64, error)
	DistinctUserIDs() ([]uint, error)
}

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByUserID(userID uint, offset, limit int) ([]models.Notification, error)
	CountUnread(userID uint) (int64, error)
	MarkAllRead(userID uint) error
	ExistsForReferenceSince(userID, referenceID uint, since time.Time) (bool, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Subscription SubscriptionRepository
	Notification NotificationRepository
}

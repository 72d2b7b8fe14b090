package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/subkeeper/subkeeper/app/models"
)

// subscriptionRepository implements the SubscriptionRepository interface
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Create creates a new subscription in the database
func (r *subscriptionRepository) Create(sub *models.Subscription) error {
	return r.db.Create(sub).Error
}

// GetByID retrieves a subscription by its ID
func (r *subscriptionRepository) GetByID(id uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetByUserID retrieves all subscriptions owned by a user
func (r *subscriptionRepository) GetByUserID(userID uint) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Where("user_id = ?", userID).Order("next_payment_date ASC").Find(&subs).Error
	return subs, err
}

// GetActiveByUserID retrieves a user's active subscriptions
func (r *subscriptionRepository) GetActiveByUserID(userID uint) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Where("user_id = ? AND active = ?", userID, true).Order("next_payment_date ASC").Find(&subs).Error
	return subs, err
}

// GetDueWithin retrieves active subscriptions of all users whose next payment
// date falls within [start, end], both inclusive.
func (r *subscriptionRepository) GetDueWithin(start, end time.Time) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.
		Where("active = ? AND next_payment_date >= ? AND next_payment_date <= ?", true, start, end).
		Order("next_payment_date ASC").
		Find(&subs).Error
	return subs, err
}

// Update updates an existing subscription in the database
func (r *subscriptionRepository) Update(sub *models.Subscription) error {
	return r.db.Save(sub).Error
}

// Delete removes a subscription by its ID
func (r *subscriptionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Subscription{}, id).Error
}

// Count returns the total number of subscriptions
func (r *subscriptionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).Count(&count).Error
	return count, err
}

// CountByUserID returns the number of subscriptions owned by a user
func (r *subscriptionRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// DistinctUserIDs returns the IDs of all users that own at least one subscription
func (r *subscriptionRepository) DistinctUserIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Subscription{}).Distinct("user_id").Pluck("user_id", &ids).Error
	return ids, err
}

package statistics

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/subkeeper/subkeeper/app/models"
	"github.com/subkeeper/subkeeper/internal/pkg/cache"
	"github.com/subkeeper/subkeeper/internal/pkg/database"
)

const (
	CacheKeyUsersTotal         = "statistics:users:total"
	CacheKeySubscriptionsTotal = "statistics:subscriptions:total"
	CacheExpiration            = 30 * time.Minute
)

// StatisticsData holds the service-wide counters shown on the landing page
type StatisticsData struct {
	TotalUsers         int
	TotalSubscriptions int
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// UpdateCacheIfNeeded refreshes the cached counters when they are stale
func UpdateCacheIfNeeded() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	if time.Since(lastCacheUpdate) <= cacheUpdateInterval {
		return
	}

	if err := UpdateStatisticsCache(); err != nil {
		log.Printf("Error updating statistics cache: %v", err)
		return
	}
	lastCacheUpdate = time.Now()
}

// UpdateStatisticsCache recounts users and subscriptions and stores the totals in the cache
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var totalUsers int64
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return err
	}

	var totalSubscriptions int64
	if err := db.Model(&models.Subscription{}).Count(&totalSubscriptions).Error; err != nil {
		return err
	}

	if err := cache.Set(CacheKeyUsersTotal, strconv.FormatInt(totalUsers, 10), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeySubscriptionsTotal, strconv.FormatInt(totalSubscriptions, 10), CacheExpiration); err != nil {
		return err
	}

	return nil
}

// GetStatistics returns the cached counters, recounting on a cache miss
func GetStatistics() StatisticsData {
	UpdateCacheIfNeeded()

	data := StatisticsData{}

	if users, err := cache.GetInt(CacheKeyUsersTotal); err == nil {
		data.TotalUsers = users
	} else {
		var count int64
		database.GetDB().Model(&models.User{}).Count(&count)
		data.TotalUsers = int(count)
	}

	if subs, err := cache.GetInt(CacheKeySubscriptionsTotal); err == nil {
		data.TotalSubscriptions = subs
	} else {
		var count int64
		database.GetDB().Model(&models.Subscription{}).Count(&count)
		data.TotalSubscriptions = int(count)
	}

	return data
}

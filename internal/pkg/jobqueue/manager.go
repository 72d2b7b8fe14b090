package jobqueue

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/subkeeper/subkeeper/app/repository"
	"github.com/subkeeper/subkeeper/internal/pkg/billing"
	"github.com/subkeeper/subkeeper/internal/pkg/metrics/counter"
)

const (
	// reminderScanInterval is how often the manager scans for due payments.
	reminderScanInterval = time.Hour

	// reminderScanWindowDays bounds how far ahead a single scan looks. Any
	// per-subscription reminder lead time larger than this is still picked
	// up once the payment date moves inside the window.
	reminderScanWindowDays = 31
)

// Manager coordinates the job queue and the periodic reminder scan.
type Manager struct {
	queue  *Queue
	stopCh chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex
	running bool
}

var (
	globalManager *Manager
	managerOnce     sync.Once
)

// GetManager returns the singleton job queue manager
func GetManager() *Manager {
	managerOnce.Do(func() {
		globalManager = &Manager{
			queue:  NewQueue(3),
			stopCh: make(chan struct{}),
		}
	})
	return globalManager
}

// GetQueue returns the underlying job queue
func (m *Manager) GetQueue() *Queue {
	return m.queue
}

// IsRunning reports whether the manager has been started.
func (m *Manager) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Start starts the workers and the reminder scan loop.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return
	}
	m.running = true

	m.queue.Start()

	m.wg.Add(1)
	go m.reminderScanLoop()

	log.Info("[JobQueue] Manager started")
}

// Stop stops the scan loop and drains the workers.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}
	m.running = false

	close(m.stopCh)
	m.wg.Wait()
	m.queue.Stop()

	log.Info("[JobQueue] Manager stopped")
}

// reminderScanLoop runs a scan immediately and then on a fixed interval.
func (m *Manager) reminderScanLoop() {
	defer m.wg.Done()

	m.ScanDueSubscriptions(time.Now())

	ticker := time.NewTicker(reminderScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case now := <-ticker.C:
			m.ScanDueSubscriptions(now)
			if err := counter.FlushAll(); err != nil {
				log.Errorf("[JobQueue] Failed to flush reminder counters: %v", err)
			}
		}
	}
}

// ScanDueSubscriptions finds active subscriptions whose next payment falls
// inside their reminder lead time and enqueues a reminder job for each.
// Duplicate suppression happens in the job processor, so enqueuing the same
// subscription across consecutive scans is harmless.
func (m *Manager) ScanDueSubscriptions(now time.Time) {
	repos := repository.GetGlobalRepositories()

	end := now.AddDate(0, 0, reminderScanWindowDays)
	subs, err := repos.Subscription.GetDueWithin(now.AddDate(0, 0, -1), end)
	if err != nil {
		log.Errorf("[JobQueue] Reminder scan failed: %v", err)
		return
	}

	enqueued := 0
	for _, sub := range subs {
		if !sub.Active {
			continue
		}

		days := billing.DaysTillPayment(sub.NextPaymentDate, now)
		if days > sub.ReminderDays {
			continue
		}

		payload := PaymentReminderJobPayload{
			SubscriptionID:   sub.ID,
			UserID:           sub.UserID,
			SubscriptionName: sub.Name,
			NextPaymentDate:  sub.NextPaymentDate.Format("2006-01-02"),
			DaysTillPayment:  days,
		}

		if _, err := m.queue.EnqueueJob(JobTypePaymentReminder, payload.ToMap()); err != nil {
			log.Errorf("[JobQueue] Failed to enqueue reminder for subscription %d: %v", sub.ID, err)
			continue
		}
		enqueued++
	}

	if enqueued > 0 {
		log.Infof("[JobQueue] Reminder scan enqueued %d jobs (%d candidates)", enqueued, len(subs))
	}
}

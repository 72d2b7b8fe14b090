package jobqueue

import (
	"encoding/json"
	"errors"
	"time"
)

// JobType defines the type of job
type JobType string

const (
	JobTypePaymentReminder JobType = "payment_reminder"
)

// JobStatus defines the status of a job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusRetrying   JobStatus = "retrying"
)

// Job represents a background job
type Job struct {
	ID          string                 `json:"id"`
	Type        JobType                `json:"type"`
	Status      JobStatus              `json:"status"`
	Payload     map[string]interface{} `json:"payload"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	ProcessedAt *time.Time             `json:"processed_at,omitempty"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	ErrorMsg    string                 `json:"error_msg,omitempty"`
	RetryCount  int                    `json:"retry_count"`
	MaxRetries  int                    `json:"max_retries"`
}

// PaymentReminderJobPayload contains the payload for payment reminder jobs
type PaymentReminderJobPayload struct {
	SubscriptionID   uint   `json:"subscription_id"`
	UserID           uint   `json:"user_id"`
	SubscriptionName string `json:"subscription_name"`
	NextPaymentDate  string `json:"next_payment_date"` // calendar date, YYYY-MM-DD
	DaysTillPayment  int    `json:"days_till_payment"`
}

// ToMap converts the payload to a map for storage
func (p PaymentReminderJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"subscription_id":   p.SubscriptionID,
		"user_id":           p.UserID,
		"subscription_name": p.SubscriptionName,
		"next_payment_date": p.NextPaymentDate,
		"days_till_payment": p.DaysTillPayment,
	}
}

// PaymentReminderJobPayloadFromMap creates a payload from a stored map
func PaymentReminderJobPayloadFromMap(data map[string]interface{}) (*PaymentReminderJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload PaymentReminderJobPayload
	if err := json.Unmarshal(jsonData, &payload); err != nil {
		return nil, err
	}
	if payload.SubscriptionID == 0 || payload.UserID == 0 {
		return nil, errors.New("payment reminder payload missing subscription_id or user_id")
	}
	return &payload, nil
}

// IsRetryable reports whether the job may be retried
func (j *Job) IsRetryable() bool {
	return j.RetryCount < j.MaxRetries
}

// MarkAsProcessing marks the job as processing
func (j *Job) MarkAsProcessing() {
	now := time.Now()
	j.Status = JobStatusProcessing
	j.ProcessedAt = &now
	j.UpdatedAt = now
}

// MarkAsCompleted marks the job as completed
func (j *Job) MarkAsCompleted() {
	now := time.Now()
	j.Status = JobStatusCompleted
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// MarkAsFailed marks the job as failed and records the error
func (j *Job) MarkAsFailed(errorMsg string) {
	j.Status = JobStatusFailed
	j.ErrorMsg = errorMsg
	j.RetryCount++
	j.UpdatedAt = time.Now()
}

// MarkAsRetrying marks the job as waiting for a retry
func (j *Job) MarkAsRetrying() {
	j.Status = JobStatusRetrying
	j.UpdatedAt = time.Now()
}

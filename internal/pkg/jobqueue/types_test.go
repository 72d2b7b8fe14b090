package jobqueue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentReminderJobPayloadRoundTrip(t *testing.T) {
	payload := PaymentReminderJobPayload{
		SubscriptionID:   42,
		UserID:           7,
		SubscriptionName: "Netflix",
		NextPaymentDate:  "2025-05-04",
		DaysTillPayment:  3,
	}

	got, err := PaymentReminderJobPayloadFromMap(payload.ToMap())
	require.NoError(t, err)
	assert.Equal(t, payload, *got)
}

func TestPaymentReminderJobPayloadFromMapJSONNumbers(t *testing.T) {
	// IDs arrive as float64 after a JSON round trip through Redis
	data := map[string]interface{}{
		"subscription_id":   float64(42),
		"user_id":           float64(7),
		"subscription_name": "Spotify",
		"next_payment_date": "2025-06-01",
		"days_till_payment": float64(1),
	}

	got, err := PaymentReminderJobPayloadFromMap(data)
	require.NoError(t, err)
	assert.Equal(t, uint(42), got.SubscriptionID)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, 1, got.DaysTillPayment)
}

func TestPaymentReminderJobPayloadFromMapMissingFields(t *testing.T) {
	_, err := PaymentReminderJobPayloadFromMap(map[string]interface{}{
		"subscription_name": "Spotify",
	})
	assert.Error(t, err)
}

func TestJobLifecycle(t *testing.T) {
	job := &Job{
		ID:         "test-job",
		Type:       JobTypePaymentReminder,
		Status:     JobStatusPending,
		CreatedAt:  time.Now(),
		MaxRetries: 2,
	}

	job.MarkAsProcessing()
	assert.Equal(t, JobStatusProcessing, job.Status)
	require.NotNil(t, job.ProcessedAt)

	job.MarkAsFailed("smtp timeout")
	assert.Equal(t, JobStatusFailed, job.Status)
	assert.Equal(t, "smtp timeout", job.ErrorMsg)
	assert.Equal(t, 1, job.RetryCount)
	assert.True(t, job.IsRetryable())

	job.MarkAsRetrying()
	assert.Equal(t, JobStatusRetrying, job.Status)

	job.MarkAsFailed("smtp timeout")
	assert.Equal(t, 2, job.RetryCount)
	assert.False(t, job.IsRetryable())

	job.MarkAsCompleted()
	assert.Equal(t, JobStatusCompleted, job.Status)
	require.NotNil(t, job.CompletedAt)
}

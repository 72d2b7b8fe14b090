package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Subscription is a recurring payment tracked for a single user. Amounts are
// stored in the subscription's own currency and are never converted.
type Subscription struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	Name            string          `gorm:"type:varchar(150);not null" json:"name" validate:"required,min=1,max=150"`
	Description     string          `gorm:"type:text" json:"description" validate:"max=1000"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount" validate:"-"`
	Currency        string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency" validate:"required,len=3"`
	BillingCycle    string          `gorm:"type:varchar(20);not null;default:'monthly'" json:"billing_cycle" validate:"required,oneof=weekly biweekly monthly quarterly yearly"`
	StartDate       time.Time       `gorm:"type:date;not null" json:"start_date"`
	NextPaymentDate time.Time       `gorm:"type:date;not null;index" json:"next_payment_date"`
	Category        string          `gorm:"type:varchar(100);not null" json:"category" validate:"required,max=100"`
	Logo            string          `gorm:"type:varchar(100)" json:"logo" validate:"max=100"`
	Website         string          `gorm:"type:varchar(255)" json:"website" validate:"omitempty,url,max=255"`
	ReminderDays    int             `gorm:"not null;default:3" json:"reminder_days" validate:"gte=0"`
	RemindersSent   int64           `gorm:"not null;default:0" json:"reminders_sent" validate:"-"`
	Color           string          `gorm:"type:varchar(20)" json:"color" validate:"max=20"`
	Active          bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// DefaultReminderDays is the reminder lead time applied when none is supplied.
const DefaultReminderDays = 3

// DefaultCurrency is applied when no currency code is supplied.
const DefaultCurrency = "USD"

func (s *Subscription) Validate() error {
	if s.Amount.IsNegative() {
		return fmt.Errorf("subscription amount must not be negative, got %s", s.Amount)
	}
	if s.StartDate.IsZero() {
		return fmt.Errorf("subscription start date is required")
	}

	v := validator.New()

	return v.Struct(s)
}

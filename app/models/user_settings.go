package models

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// UserSettings stores per-user reminder preferences and API token state.
type UserSettings struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	UserID              uint           `gorm:"uniqueIndex" json:"user_id"`
	RemindersEnabled    bool           `gorm:"default:true" json:"reminders_enabled"`
	DefaultReminderDays int            `gorm:"not null;default:3" json:"default_reminder_days"`
	NotifyEmail         string         `gorm:"type:varchar(200);default:''" json:"notify_email"`
	APITokenHash        string         `gorm:"type:char(64);default:''" json:"-"`
	APITokenPrefix      string         `gorm:"type:varchar(20);default:''" json:"api_token_prefix"`
	APITokenCreatedAt   *time.Time     `json:"api_token_created_at"`
	APITokenLastUsedAt  *time.Time     `json:"api_token_last_used_at"`
	APITokenRevokedAt   *time.Time     `json:"api_token_revoked_at"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

var apiTokenEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

const apiTokenPrefix = "skp_"

// GetOrCreateUserSettings returns existing settings or creates defaults
func GetOrCreateUserSettings(db *gorm.DB, userID uint) (*UserSettings, error) {
	var us UserSettings
	if err := db.Where("user_id = ?", userID).First(&us).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			us = UserSettings{UserID: userID, RemindersEnabled: true, DefaultReminderDays: DefaultReminderDays}
			if err := db.Create(&us).Error; err != nil {
				return nil, err
			}
			return &us, nil
		}
		return nil, err
	}
	return &us, nil
}

// HasActiveAPIToken reports whether the user has an active API token configured
func (us *UserSettings) HasActiveAPIToken() bool {
	return us != nil && us.APITokenHash != "" && us.APITokenRevokedAt == nil
}

// IssueAPIToken generates a new API token, persists metadata on the struct, and returns the raw secret.
// Callers must persist the struct via the database after invoking this method.
func (us *UserSettings) IssueAPIToken() (string, error) {
	rawToken, prefix, hash, err := generateAPITokenMaterial()
	if err != nil {
		return "", err
	}
	now := time.Now()
	us.APITokenHash = hash
	us.APITokenPrefix = prefix
	us.APITokenCreatedAt = &now
	us.APITokenRevokedAt = nil
	us.APITokenLastUsedAt = nil
	return rawToken, nil
}

// RevokeAPIToken clears the stored API token metadata without deleting the record.
func (us *UserSettings) RevokeAPIToken() {
	us.APITokenHash = ""
	us.APITokenPrefix = ""
	now := time.Now()
	us.APITokenRevokedAt = &now
	us.APITokenLastUsedAt = nil
}

// TouchAPITokenUsage updates the last-used timestamp metadata.
func (us *UserSettings) TouchAPITokenUsage() {
	now := time.Now()
	us.APITokenLastUsedAt = &now
}

// HashAPIToken returns the SHA-256 hash for the provided API token.
func HashAPIToken(raw string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(raw)))
	return hex.EncodeToString(sum[:])
}

func generateAPITokenMaterial() (string, string, string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", "", err
	}
	encoded := apiTokenEncoding.EncodeToString(b)
	encoded = strings.ToLower(encoded)
	rawToken := apiTokenPrefix + encoded
	if len(rawToken) < 12 {
		return "", "", "", fmt.Errorf("api token generation failed: token too short")
	}
	prefix := rawToken[:min(len(rawToken), 16)]
	hash := HashAPIToken(rawToken)
	return rawToken, prefix, hash, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

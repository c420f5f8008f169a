package models

import "time"

// User is the account record. Emails are lowercased and trimmed by the
// service layer before every read or write, so the unique index is
// effectively case-insensitive. PasswordHash is never serialized; the
// activation and reset tokens are opaque server-side values and must not
// be exposed by any read endpoint either.
type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	// IsActive stays false until the activation token is consumed.
	IsActive        bool   `gorm:"default:false" json:"is_active"`
	ActivationToken string `json:"-"`

	ResetToken    string     `json:"-"`
	ResetTokenExp *time.Time `json:"-"`
}

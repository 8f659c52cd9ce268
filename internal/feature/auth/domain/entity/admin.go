// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Admin is an account allowed to manage candidates.
type Admin struct {
	// ID is the unique identifier for the administrator.
	ID uint `gorm:"primaryKey"`
	// Email is used to log in and must be unique across all administrators.
	Email string `gorm:"uniqueIndex;size:250;not null"`
	// PasswordHash is the bcrypt hash of the password. Plaintext is never stored.
	PasswordHash string `gorm:"size:255;not null"`
	// CreatedAt is set by GORM on insert.
	CreatedAt time.Time
}

// TableName returns the table name for GORM.
func (Admin) TableName() string {
	return "admins"
}

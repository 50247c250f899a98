package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account that owns categories and expenses.
//
// Users are never deleted. Deactivated users cannot log in.
type User struct {
	DefaultModel
	Email        string `json:"email" gorm:"size:120;not null;uniqueIndex"`
	Username     string `json:"username" gorm:"size:80;not null;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	FirstName    string `json:"first_name" gorm:"size:50;not null"`
	LastName     string `json:"last_name" gorm:"size:50;not null"`
	IsActive     bool   `json:"is_active" gorm:"not null;default:true"`
}

// BeforeSave normalizes the user's fields.
//
// Emails are compared case-insensitively, so they are stored in lower case.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	u.Username = strings.TrimSpace(u.Username)
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)

	return nil
}

// FullName returns first and last name separated by a space.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeEmail returns the form of an email address used for storage
// and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Package service implements the operations of the API on top of the models.
//
// Every function receives the *gorm.DB to work on. Reads are scoped to the
// user that makes the request, writes run in a transaction.
package service

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spendwise/backend/internal/auth"
	"github.com/spendwise/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Registration is the data needed to create a user.
type Registration struct {
	Email     string
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// Register creates a new user.
//
// If the email or the username are in use, ErrEmailNotUnique or
// ErrUsernameNotUnique is returned. The email is checked first.
func Register(db *gorm.DB, r Registration) (models.User, error) {
	hash, err := auth.HashPassword(r.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        models.NormalizeEmail(r.Email),
		Username:     strings.TrimSpace(r.Username),
		PasswordHash: hash,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		IsActive:     true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var existing []models.User
		err := tx.
			Where("email = ? OR username = ?", user.Email, user.Username).
			Find(&existing).Error
		if err != nil {
			return err
		}

		if slices.ContainsFunc(existing, func(u models.User) bool { return u.Email == user.Email }) {
			return models.ErrEmailNotUnique
		}

		if slices.ContainsFunc(existing, func(u models.User) bool { return u.Username == user.Username }) {
			return models.ErrUsernameNotUnique
		}

		return tx.Create(&user).Error
	})
	if err != nil {
		return models.User{}, err
	}

	log.Info().Uint("user", user.ID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Authenticate returns the active user with the email and password.
//
// All failures caused by the credentials return ErrInvalidCredentials so
// that callers cannot probe for registered emails.
func Authenticate(db *gorm.DB, email, password string) (models.User, error) {
	var user models.User
	err := db.Where("email = ?", models.NormalizeEmail(email)).First(&user).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	if !user.IsActive || !auth.CheckPassword(user.PasswordHash, password) {
		log.Debug().Uint("user", user.ID).Msg("login rejected")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// ActiveUser returns the user with the ID if it exists and is active.
func ActiveUser(db *gorm.DB, id uint) (models.User, error) {
	var user models.User
	err := db.Where("id = ? AND is_active", id).First(&user).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, ErrUserNotFound
	}

	return user, err
}

// DeactivateUser marks the user with the email as inactive. Inactive users
// can neither log in nor refresh their tokens.
func DeactivateUser(db *gorm.DB, email string) (models.User, error) {
	var user models.User

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ?", models.NormalizeEmail(email)).First(&user).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		return tx.Model(&user).Update("is_active", false).Error
	})
	if err != nil {
		return models.User{}, err
	}

	log.Info().Uint("user", user.ID).Msg("user deactivated")
	return user, nil
}

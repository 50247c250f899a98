package service

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spendwise/backend/internal/models"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotFound        = errors.New("user not found")
	ErrCategoryHasExpenses = errors.New("cannot delete category with existing expenses")
	ErrCategoryUnavailable = errors.New("category not found or access denied")
)

// logFailure logs a failed operation. Failures caused by the request are
// expected and only logged at debug level.
func logFailure(userID uint, err error, msg string) {
	event := log.Debug()
	if errors.Is(err, models.ErrGeneral) {
		event = log.Error()
	}

	event.Uint("user", userID).Err(err).Msg(msg)
}

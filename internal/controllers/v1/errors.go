package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/backend/internal/auth"
	"github.com/spendwise/backend/internal/httperror"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/service"
	"github.com/spendwise/backend/internal/types"
	"github.com/spendwise/backend/internal/validate"
)

// status returns the appropriate status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError

	case errors.Is(err, models.ErrResourceNotFound),
		errors.Is(err, service.ErrCategoryUnavailable),
		errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, models.ErrCategoryNameNotUnique),
		errors.Is(err, models.ErrEmailNotUnique),
		errors.Is(err, models.ErrUsernameNotUnique),
		errors.Is(err, service.ErrCategoryHasExpenses):
		return http.StatusConflict

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, auth.ErrTokenMissing),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrTokenInvalid):
		return http.StatusUnauthorized

	case errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, types.ErrInvalidDate),
		errors.Is(err, models.ErrAmountNegative),
		isJSONTypeError(err):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func isJSONTypeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}

// abort ends the request with the error response for err.
func abort(c *gin.Context, err error) {
	if fields, ok := validate.Errors(err); ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, httperror.Error{
			Message: validate.ErrValidation.Error(),
			Details: fields,
		})
		return
	}

	s := status(err)
	if s == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Uint("user", auth.UserID(c)).Msgf("%T: %v", err, err.Error())
		c.AbortWithStatusJSON(s, httperror.New(models.ErrGeneral))
		return
	}

	c.AbortWithStatusJSON(s, httperror.New(err))
}

// errInvalidID is the failure for IDs in the path that are not positive integers.
var errInvalidID = validate.FieldErrors{"id": "id must be a positive integer"}

package auth

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/backend/internal/httperror"
)

const contextUserID = "spendwise-user-id"

// RequireToken aborts the request with 401 unless it carries a valid bearer
// token of the given kind. The ID of the authenticated user is available to
// later handlers through UserID.
func RequireToken(tm *TokenManager, kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(ErrTokenMissing))
			return
		}

		userID, err := tm.Verify(token, kind)
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(err))
			return
		}

		c.Set(contextUserID, userID)
		c.Next()
	}
}

// UserID returns the ID of the user authenticated by RequireToken.
func UserID(c *gin.Context) uint {
	return c.GetUint(contextUserID)
}

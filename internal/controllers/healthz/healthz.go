package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
)

type Response struct {
	Status      string `json:"status" example:"healthy"`
	Version     string `json:"version,omitempty" example:"1.0.0"`
	Environment string `json:"environment,omitempty" example:"production"`
	Error       string `json:"error,omitempty" example:"database is not reachable"`
}

func RegisterRoutes(r *gin.RouterGroup, version, environment string) {
	r.OPTIONS("", Options)
	r.GET("", Get(version, environment))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/health [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health. The database must be reachable for the application to be healthy.
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Failure		503	{object}	Response
// @Router			/health [get]
func Get(version, environment string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := models.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}

		if err != nil {
			log.Error().Err(err).Msg("health check failed")
			c.JSON(http.StatusServiceUnavailable, Response{
				Status: "unhealthy",
				Error:  "database is not reachable",
			})
			return
		}

		c.JSON(http.StatusOK, Response{
			Status:      "healthy",
			Version:     version,
			Environment: environment,
		})
	}
}

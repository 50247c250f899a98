package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	docs "github.com/spendwise/backend/api"
	"github.com/spendwise/backend/internal/config"
	"github.com/spendwise/backend/internal/controllers/healthz"
	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/internal/httperror"
	"github.com/spendwise/backend/internal/validate"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags "-X github.com/spendwise/backend/internal/router.version=..."
var version = "0.0.0"

// Config sets up the engine with its middlewares. The returned teardown
// function must be called when the engine is not used anymore.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("could not unregister prometheus metrics")
		}
	}

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}

	if err := validate.Register(); err != nil {
		return nil, teardown, fmt.Errorf("registering validations: %w", err)
	}

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.APIURL))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperror.NewFromString("this HTTP method is not allowed for the endpoint you called"))
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httperror.NewFromString("there is no endpoint at this path"))
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOriginFunc:  allowOrigin(cfg.CORSAllowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", cfg.APIURL.String()).Str("Host", cfg.APIURL.Host).Str("Path", cfg.APIURL.Path).Msg("Router")
	log.Info().Str("version", version).Str("environment", cfg.Environment).Msg("Router")

	docs.SwaggerInfo.Host = cfg.APIURL.Host
	docs.SwaggerInfo.BasePath = cfg.APIURL.Path
	docs.SwaggerInfo.Version = version

	return r, teardown, nil
}

// allowOrigin matches request origins against a list of patterns
// like https://*.example.com.
func allowOrigin(patterns []string) func(string) bool {
	return func(origin string) bool {
		for _, pattern := range patterns {
			if glob.Glob(pattern, origin) {
				return true
			}
		}
		return false
	}
}

// AttachRoutes attaches the API routes to the router group that is passed in.
func AttachRoutes(co v1.Controller, group *gin.RouterGroup, cfg config.Config) {
	healthz.RegisterRoutes(group.Group("/health"), version, cfg.Environment)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	co.RegisterAuthRoutes(group.Group("/auth"))
	co.RegisterCategoryRoutes(group.Group("/categories"))
	co.RegisterExpenseRoutes(group.Group("/expenses"))
}

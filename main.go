package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/backend/internal/auth"
	"github.com/spendwise/backend/internal/config"
	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/internal/models"
	"github.com/spendwise/backend/internal/router"
	"github.com/spendwise/backend/internal/service"
)

//go:generate swag init --parseDependency --output ./api

// @title						SpendWise
// @description				Personal expense tracking
// @license.name				MIT
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// Create the directory for the database
	err = os.MkdirAll(filepath.Dir(cfg.DatabasePath), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if cfg.SeedDemoData {
		user, created, err := service.SeedDemo(models.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("seeding demo data")
		}
		log.Info().Bool("created", created).Str("email", user.Email).Msg("demo data")
	}

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	controller := v1.Controller{
		Tokens:   auth.NewTokenManager(cfg.JWTSecret, "spendwise", cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		Currency: cfg.Currency,
	}
	router.AttachRoutes(controller, r.Group(cfg.APIURL.Path), cfg)

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("address", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()

	<-ctx.Done()
	stop()
	log.Info().Msg("shutting down, press Ctrl+C again to force")

	// Requests still in progress get 10 seconds to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shut down")
	}

	sqlDB, err := models.DB.DB()
	if err == nil {
		_ = sqlDB.Close()
	}

	log.Info().Msg("server exited")
}

// Package config reads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
)

// MinSecretLength is the minimum length of the JWT signing key in bytes.
const MinSecretLength = 32

// Config is the runtime configuration.
type Config struct {
	APIURL           *url.URL
	DatabasePath     string
	JWTSecret        string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	Environment      string
	Currency         currency.Unit
	SeedDemoData     bool
	Port             string
	CORSAllowOrigins []string
	EnablePprof      bool
}

// Load reads an optional .env file from the working directory and
// returns the configuration from the environment.
//
// Variables that are already set take precedence over the .env file.
func Load() (Config, error) {
	// A missing file is fine, everything can come from the environment
	_ = godotenv.Load()

	return FromEnv(os.LookupEnv)
}

// FromEnv builds the configuration from a lookup function like os.LookupEnv.
// All problems are collected and returned as one error.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			return fallback
		}
		return v
	}

	var errs []error
	cfg := Config{
		DatabasePath:     get("DATABASE_PATH", "data/spendwise.db"),
		JWTSecret:        get("JWT_SECRET_KEY", ""),
		Environment:      get("APP_ENV", "production"),
		Port:             get("PORT", "8080"),
		CORSAllowOrigins: strings.Fields(get("CORS_ALLOW_ORIGINS", "")),
	}

	apiURL := get("API_URL", "")
	if apiURL == "" {
		errs = append(errs, errors.New("API_URL must be set"))
	} else {
		u, err := url.Parse(apiURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("API_URL must be an absolute URL, got %q", apiURL))
		}
		cfg.APIURL = u
	}

	if len(cfg.JWTSecret) < MinSecretLength {
		errs = append(errs, fmt.Errorf("JWT_SECRET_KEY must be at least %d bytes long", MinSecretLength))
	}

	cfg.AccessTokenTTL = duration(&errs, "JWT_ACCESS_TOKEN_EXPIRES", get("JWT_ACCESS_TOKEN_EXPIRES", "1h"))
	cfg.RefreshTokenTTL = duration(&errs, "JWT_REFRESH_TOKEN_EXPIRES", get("JWT_REFRESH_TOKEN_EXPIRES", "720h"))

	unit, err := currency.ParseISO(get("CURRENCY", "USD"))
	if err != nil {
		errs = append(errs, fmt.Errorf("CURRENCY must be an ISO 4217 code: %w", err))
	}
	cfg.Currency = unit

	cfg.SeedDemoData = boolean(&errs, "SEED_DEMO_DATA", get("SEED_DEMO_DATA", "false"))
	cfg.EnablePprof = boolean(&errs, "ENABLE_PPROF", get("ENABLE_PPROF", "false"))

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a port number, got %q", cfg.Port))
	}

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	return cfg, nil
}

// Address is the address for the HTTP server to listen on.
func (c Config) Address() string {
	return ":" + c.Port
}

func duration(errs *[]error, key, value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		*errs = append(*errs, fmt.Errorf("%s must be a positive duration like 1h30m, got %q", key, value))
	}

	return d
}

func boolean(errs *[]error, key, value string) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be true or false, got %q", key, value))
	}

	return b
}

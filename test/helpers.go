package test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spendwise/backend/internal/auth"
)

// Secret is the signing key of the tokens in tests.
const Secret = "spendwise-test-secret-0123456789abcdef"

// Tokens is the token manager used by the router in tests.
var Tokens = auth.NewTokenManager(Secret, "spendwise-test", time.Hour, 24*time.Hour)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// AuthHeader returns the Authorization header with a fresh access token for the user.
func AuthHeader(t *testing.T, userID uint) map[string]string {
	return tokenHeader(t, userID, auth.KindAccess)
}

// RefreshHeader returns the Authorization header with a fresh refresh token for the user.
func RefreshHeader(t *testing.T, userID uint) map[string]string {
	return tokenHeader(t, userID, auth.KindRefresh)
}

func tokenHeader(t *testing.T, userID uint, kind auth.Kind) map[string]string {
	token, err := Tokens.Issue(userID, kind)
	if err != nil {
		t.Fatalf("issuing %s token: %v", kind, err)
	}

	return map[string]string{"Authorization": "Bearer " + token}
}

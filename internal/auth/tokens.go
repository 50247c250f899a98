// Package auth implements password hashing and JWT based authentication.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind is the purpose of a token.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

var (
	ErrTokenMissing = errors.New("an authorization header with a bearer token is required")
	ErrTokenExpired = errors.New("the token has expired")
	ErrTokenInvalid = errors.New("the token is invalid")
)

// Claims are the claims of tokens issued by the TokenManager.
type Claims struct {
	Kind Kind `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair is the set of tokens handed out on registration and login.
type TokenPair struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`  // Short-lived token for API calls
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Long-lived token to obtain new access tokens
}

// TokenManager issues and verifies signed JWTs.
type TokenManager struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a manager with the provided secret, issuer, and lifetimes.
func NewTokenManager(secret, issuer string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Issue returns a signed token of the given kind for a user.
func (t *TokenManager) Issue(userID uint, kind Kind) (string, error) {
	ttl := t.accessTTL
	if kind == KindRefresh {
		ttl = t.refreshTTL
	}

	now := time.Now()
	claims := Claims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    t.issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing %s token: %w", kind, err)
	}

	return signed, nil
}

// IssuePair returns a new access and refresh token for a user.
func (t *TokenManager) IssuePair(userID uint) (TokenPair, error) {
	access, err := t.Issue(userID, KindAccess)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := t.Issue(userID, KindRefresh)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Verify checks signature, issuer, lifetime and kind of a token and
// returns the ID of the user it was issued for.
func (t *TokenManager) Verify(tokenString string, kind Kind) (uint, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return 0, ErrTokenExpired
	}
	if err != nil {
		return 0, ErrTokenInvalid
	}

	if claims.Kind != kind {
		return 0, fmt.Errorf("%w: %s token required", ErrTokenInvalid, kind)
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 0)
	if err != nil || id == 0 {
		return 0, ErrTokenInvalid
	}

	return uint(id), nil
}

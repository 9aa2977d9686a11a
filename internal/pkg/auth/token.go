// Package auth issues and verifies the bearer tokens that identify customers,
// merchants, and admins on the HTTP surface.
package auth

import (
	"errors"
	"time"

	"constructmart/internal/core/domain/model/kernel"
	"constructmart/internal/core/domain/model/user"
	"constructmart/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSigningKeyIsRequired is returned when constructing a TokenManager without a key.
var ErrSigningKeyIsRequired = errs.NewValueIsRequiredError("signing key")

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims carries the authenticated principal inside a signed token.
// Role travels in the token so handlers can authorize without a user lookup;
// a role change therefore takes effect on the next login.
type Claims struct {
	Role      string `json:"role"`
	Name      string `json:"name"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// Principal is the verified identity extracted from a token.
type Principal struct {
	UserID kernel.UUID
	Role   user.Role
	Name   string
}

// TokenPair is the access/refresh pair handed out at login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenManager signs and verifies HMAC bearer tokens.
type TokenManager struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a manager with the given signing key and lifetimes.
// Zero lifetimes fall back to 24h access and 7d refresh.
func NewTokenManager(key string, accessTTL, refreshTTL time.Duration) (*TokenManager, error) {
	if key == "" {
		return nil, ErrSigningKeyIsRequired
	}
	if accessTTL == 0 {
		accessTTL = 24 * time.Hour
	}
	if refreshTTL == 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenManager{key: []byte(key), accessTTL: accessTTL, refreshTTL: refreshTTL}, nil
}

// Issue creates a signed access token for the given account.
func (m *TokenManager) Issue(u *user.User) (string, error) {
	return m.issue(u, tokenTypeAccess, m.accessTTL)
}

// IssuePair creates a fresh access/refresh pair for the given account.
func (m *TokenManager) IssuePair(u *user.User) (TokenPair, error) {
	access, err := m.issue(u, tokenTypeAccess, m.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := m.issue(u, tokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (m *TokenManager) issue(u *user.User, tokenType string, ttl time.Duration) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := Claims{
		Role:      u.Role().String(),
		Name:      u.Name(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
}

// Verify parses and validates an access token, returning the principal it
// carries. A refresh token presented as an access token is rejected.
func (m *TokenManager) Verify(tokenString string) (Principal, error) {
	return m.verify(tokenString, tokenTypeAccess)
}

// VerifyRefresh parses and validates a refresh token.
func (m *TokenManager) VerifyRefresh(tokenString string) (Principal, error) {
	return m.verify(tokenString, tokenTypeRefresh)
}

// verify checks signature, expiry, and token type. Every failure mode comes
// back as an UnauthorizedError so the HTTP layer maps them all to 401.
func (m *TokenManager) verify(tokenString, wantType string) (Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.key, nil
	})
	if err != nil || !token.Valid {
		return Principal{}, errs.NewUnauthorizedErrorWithCause("invalid token", err)
	}
	if claims.TokenType != wantType {
		return Principal{}, errs.NewUnauthorizedError("wrong token type")
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, errs.NewUnauthorizedErrorWithCause("invalid token subject", err)
	}

	role, err := user.RoleFromString(claims.Role)
	if err != nil {
		return Principal{}, errs.NewUnauthorizedErrorWithCause("invalid token role", err)
	}

	return Principal{UserID: userID, Role: role, Name: claims.Name}, nil
}

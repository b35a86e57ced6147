package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token scope tags. A scope acts as a type tag preventing cross-use: an
// email confirmation token cannot authenticate an API call.
const (
	ScopeAccessToken  = "access_token"
	ScopeRefreshToken = "refresh_token"
	ScopeEmailToken   = "email_token"
)

// ErrInvalidScope is returned when a token carries a scope other than the
// one the operation expects.
var ErrInvalidScope = errors.New("invalid scope for token")

// ScopedClaims are the JWT claims carried by every SnapShare token:
// subject (the user's email), issued-at, expiry, and a scope tag.
type ScopedClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// GenerateScopedJWT signs a token for the given subject with the given
// scope and time-to-live.
func GenerateScopedJWT(subject, scope, secret, issuer string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := ScopedClaims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// NewResetToken returns a one-time password reset token. Opaque rather
// than a JWT: it is matched exactly against the stored value.
func NewResetToken() string {
	return uuid.NewString()
}

// ParseScopedJWT parses a token string, validates its signature and expiry,
// and checks that it carries the expected scope. It returns the claims on
// success.
func ParseScopedJWT(tokenString, expectedScope, secret string) (*ScopedClaims, error) {
	claims := &ScopedClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Scope != expectedScope {
		return nil, ErrInvalidScope
	}
	return claims, nil
}

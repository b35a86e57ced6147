package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/snapshare/snapshare-api/internal/apperrors"
	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/utils"
	"github.com/snapshare/snapshare-api/pkg/config"
)

// tokenService implements TokenSvcFacade. It signs scoped JWTs with the
// configured secret and hashes passwords for storage.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) HashPassword(password string) (string, error) {
	return utils.HashPassword(password)
}

func (s *tokenService) VerifyPassword(password, hash string) bool {
	return utils.CheckPasswordHash(password, hash)
}

func (s *tokenService) IssueAccessToken(email string) (string, error) {
	return utils.GenerateScopedJWT(email, utils.ScopeAccessToken, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.AccessTokenExpiryDuration)
}

func (s *tokenService) IssueRefreshToken(email string) (string, error) {
	return utils.GenerateScopedJWT(email, utils.ScopeRefreshToken, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.RefreshTokenExpiryDuration)
}

func (s *tokenService) IssueEmailToken(email string) (string, error) {
	return utils.GenerateScopedJWT(email, utils.ScopeEmailToken, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.EmailTokenExpiryDuration)
}

// Decode validates signature, expiry and scope and returns the subject
// email. The underlying cause is discarded so callers surface a uniform
// authentication failure.
func (s *tokenService) Decode(tokenString, expectedScope string) (string, error) {
	claims, err := utils.ParseScopedJWT(tokenString, expectedScope, s.cfg.JWTSecret)
	if err != nil {
		return "", apperrors.ErrUnauthorized
	}
	return claims.Subject, nil
}

func (s *tokenService) AccessTokenTTL() time.Duration {
	return s.cfg.AccessTokenExpiryDuration
}

// RemainingLifetime reads the expiry claim without verifying the
// signature. Only used to size cache TTLs, never for authentication.
func (s *tokenService) RemainingLifetime(tokenString string) time.Duration {
	var claims utils.ScopedClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return 0
	}
	if claims.ExpiresAt == nil {
		return 0
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}

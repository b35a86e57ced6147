package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/middleware"
)

// sessionService implements SessionSvcFacade. User lookups read through
// the cache and fall back to the database; the database is always
// authoritative, cache failures are logged and tolerated.
type sessionService struct {
	userRepo      portsrepo.UserRepositoryFacade
	blacklistRepo portsrepo.BlacklistRepositoryFacade
	userCache     portsrepo.UserCache
	tokenCache    portsrepo.TokenCache
	tokenSvc      portssvc.TokenSvcFacade
	cacheTTL      time.Duration
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(
	userRepo portsrepo.UserRepositoryFacade,
	blacklistRepo portsrepo.BlacklistRepositoryFacade,
	userCache portsrepo.UserCache,
	tokenCache portsrepo.TokenCache,
	tokenSvc portssvc.TokenSvcFacade,
	cacheTTL time.Duration,
) portssvc.SessionSvcFacade {
	// A snapshot must not outlive the access token it authenticates, so
	// the cache TTL is capped at the token lifetime.
	if tokenTTL := tokenSvc.AccessTokenTTL(); cacheTTL <= 0 || cacheTTL > tokenTTL {
		cacheTTL = tokenTTL
	}
	return &sessionService{
		userRepo:      userRepo,
		blacklistRepo: blacklistRepo,
		userCache:     userCache,
		tokenCache:    tokenCache,
		tokenSvc:      tokenSvc,
		cacheTTL:      cacheTTL,
	}
}

func (s *sessionService) ResolveUser(ctx context.Context, email string) (*domain.User, error) {
	cached, err := s.userCache.GetUser(ctx, email)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("user cache read failed", slog.String("email", email), slog.String("error", err.Error()))
	}
	if cached != nil {
		return cached, nil
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := s.userCache.SetUser(ctx, *user, s.cacheTTL); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("user cache write failed", slog.String("email", email), slog.String("error", err.Error()))
	}
	return user, nil
}

// RefreshUser bypasses the cache, re-reads the user from the database
// and rewrites the cached snapshot. Called after every user mutation so
// the cache never lags more than one write behind.
func (s *sessionService) RefreshUser(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := s.userCache.SetUser(ctx, *user, s.cacheTTL); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("user cache refresh failed", slog.String("email", email), slog.String("error", err.Error()))
	}
	return user, nil
}

func (s *sessionService) EvictUser(ctx context.Context, email string) {
	if err := s.userCache.DeleteUser(ctx, email); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("user cache eviction failed", slog.String("email", email), slog.String("error", err.Error()))
	}
}

// Blacklist revokes the token permanently. The database row is the
// source of truth; the cache mirror only lives as long as the token
// itself would have.
func (s *sessionService) Blacklist(ctx context.Context, token, email string) error {
	if err := s.blacklistRepo.SaveToken(ctx, token, email); err != nil {
		return fmt.Errorf("failed to persist blacklisted token: %w", err)
	}
	if ttl := s.tokenSvc.RemainingLifetime(token); ttl > 0 {
		if err := s.tokenCache.MarkBlacklisted(ctx, token, ttl); err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("blacklist cache write failed", slog.String("error", err.Error()))
		}
	}
	return nil
}

func (s *sessionService) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	hit, err := s.tokenCache.IsBlacklisted(ctx, token)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("blacklist cache read failed", slog.String("error", err.Error()))
	} else if hit {
		return true, nil
	}
	return s.blacklistRepo.FindToken(ctx, token)
}

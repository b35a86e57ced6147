package services

import (
	portsrepo "github.com/snapshare/snapshare-api/internal/core/ports/repositories"
	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	userCache portsrepo.UserCache,
	tokenCache portsrepo.TokenCache,
	storageSvc portssvc.ObjectStorageSvc,
	emailSvc portssvc.EmailSenderSvc,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Token and session services first since auth depends on both
	container.TokenSvc = NewTokenService(cfg)
	container.SessionSvc = NewSessionService(
		repos.UserRepo,
		repos.BlacklistRepo,
		userCache,
		tokenCache,
		container.TokenSvc,
		cfg.UserCacheTTL,
	)

	container.GoogleSvc = NewGoogleAuthService(cfg)
	container.AuthSvc = NewAuthService(
		repos.UserRepo,
		container.TokenSvc,
		container.SessionSvc,
		container.GoogleSvc,
		emailSvc,
	)

	container.UserSvc = NewUserService(repos.UserRepo, repos.ImageRepo, container.SessionSvc, storageSvc)
	container.ImageSvc = NewImageService(repos.ImageRepo, storageSvc)
	container.CommentSvc = NewCommentService(repos.CommentRepo, repos.ImageRepo)
	container.RatingSvc = NewRatingService(repos.RatingRepo, repos.ImageRepo)
	container.TagSvc = NewTagService(repos.TagRepo)
	container.SearchSvc = NewSearchService(repos.SearchRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TokenSvcFacade      = (*tokenService)(nil)
	_ portssvc.SessionSvcFacade    = (*sessionService)(nil)
	_ portssvc.AuthSvcFacade       = (*authService)(nil)
	_ portssvc.UserSvcFacade       = (*userService)(nil)
	_ portssvc.ImageSvcFacade      = (*imageService)(nil)
	_ portssvc.CommentSvcFacade    = (*commentService)(nil)
	_ portssvc.RatingSvcFacade     = (*ratingService)(nil)
	_ portssvc.TagSvcFacade        = (*tagService)(nil)
	_ portssvc.SearchSvcFacade     = (*searchService)(nil)
	_ portssvc.GoogleAuthSvcFacade = (*googleAuthService)(nil)
)

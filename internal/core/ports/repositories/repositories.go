package repositories

// RepositoryProvider bundles every repository implementation for
// injection into the service container.
type RepositoryProvider struct {
	UserRepo      UserRepositoryFacade
	ImageRepo     ImageRepositoryFacade
	CommentRepo   CommentRepositoryFacade
	RatingRepo    RatingRepositoryFacade
	TagRepo       TagRepositoryFacade
	BlacklistRepo BlacklistRepositoryFacade
	SearchRepo    SearchRepositoryFacade
}

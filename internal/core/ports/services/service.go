package services

// ServiceContainer bundles every service facade for handler wiring.
type ServiceContainer struct {
	TokenSvc   TokenSvcFacade
	SessionSvc SessionSvcFacade
	AuthSvc    AuthSvcFacade
	UserSvc    UserSvcFacade
	ImageSvc   ImageSvcFacade
	CommentSvc CommentSvcFacade
	RatingSvc  RatingSvcFacade
	TagSvc     TagSvcFacade
	SearchSvc  SearchSvcFacade
	GoogleSvc  GoogleAuthSvcFacade
}

package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/snapshare/snapshare-api/cmd/docs"
	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/middleware"
	"github.com/snapshare/snapshare-api/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerHomeRoutes(r)

	// Public routes: signup/login/refresh/confirmation plus public profiles
	registerAuthRoutes(r, services)
	registerGoogleAuthRoutes(r, services)
	registerPublicUserRoutes(r, services.UserSvc)

	// Everything under /api behind bearer authentication
	setupAPIRoutes(r, services)

	// Swagger routes (disabled in production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the authenticated /api group and delegates to
// specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	authMW := middleware.AuthMiddleware(services.TokenSvc, services.SessionSvc)
	api := r.Group("/api", authMW)

	registerSessionRoutes(api, services.AuthSvc)
	registerUserRoutes(api, services.UserSvc)
	registerImageRoutes(api, services.ImageSvc)
	registerCommentRoutes(api, services.CommentSvc)
	registerRatingRoutes(api, services.RatingSvc)
	registerTagRoutes(api, services.TagSvc)
	registerSearchRoutes(api, services.SearchSvc)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

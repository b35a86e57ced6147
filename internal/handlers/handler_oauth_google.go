package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/dto"
)

// googleAuthHandler handles Google social sign-in.
type googleAuthHandler struct {
	authSvc   portssvc.AuthSvcFacade
	googleSvc portssvc.GoogleAuthSvcFacade
}

// registerGoogleAuthRoutes sets up the public Google sign-in routes.
func registerGoogleAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := &googleAuthHandler{authSvc: services.AuthSvc, googleSvc: services.GoogleSvc}

	google := r.Group("/api/auth/google")
	{
		google.POST("", h.signIn)
		google.GET("/url", h.authURL)
		google.GET("/callback", h.callback)
	}
}

// signIn godoc
// @Summary Sign in with a Google ID token
// @Description Validates a Google ID token and returns a bearer pair, provisioning an account on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.GoogleSignInRequest true "Google ID token"
// @Success 200 {object} dto.TokenPair
// @Failure 401 {object} ErrorResponse "Invalid Google ID token"
// @Failure 403 {object} ErrorResponse "Account banned"
// @Router /auth/google [post]
func (h *googleAuthHandler) signIn(c *gin.Context) {
	var req dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	pair, err := h.authSvc.GoogleSignIn(c.Request.Context(), req.IDToken)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// authURL godoc
// @Summary Get the Google consent URL
// @Description Returns the Google authorization URL for the code flow together with a fresh state value.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.GoogleAuthURLResponse
// @Router /auth/google/url [get]
func (h *googleAuthHandler) authURL(c *gin.Context) {
	state := uuid.NewString()
	c.JSON(http.StatusOK, dto.GoogleAuthURLResponse{
		AuthURL: h.googleSvc.AuthCodeURL(state),
		State:   state,
	})
}

// callback godoc
// @Summary Google authorization code callback
// @Description Exchanges the authorization code for an ID token and completes sign-in.
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.TokenPair
// @Failure 400 {object} ErrorResponse "Missing authorization code"
// @Failure 401 {object} ErrorResponse "Invalid Google ID token"
// @Router /auth/google/callback [get]
func (h *googleAuthHandler) callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Missing authorization code"})
		return
	}

	idToken, err := h.googleSvc.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, err)
		return
	}

	pair, err := h.authSvc.GoogleSignIn(c.Request.Context(), idToken)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/dto"
	"github.com/snapshare/snapshare-api/internal/middleware"
)

// authHandler handles registration, login and the credential lifecycle.
type authHandler struct {
	authSvc portssvc.AuthSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(authSvc portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authSvc: authSvc}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.AuthSvc)

	// 5 requests per minute per IP on the credential-guessing surface
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMW := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", limitMW, h.signup)
		auth.POST("/login", limitMW, h.login)
		auth.GET("/refresh_token", h.refreshToken)
		auth.GET("/confirmed_email/:token", h.confirmEmail)
		auth.POST("/request_email", h.requestEmail)
		auth.GET("/forgot_password", h.forgotPassword)
		auth.PATCH("/reset_password", h.resetPassword)
	}
}

// registerSessionRoutes sets up the auth routes that require a valid
// bearer token.
func registerSessionRoutes(rg *gin.RouterGroup, authSvc portssvc.AuthSvcFacade) {
	h := newAuthHandler(authSvc)
	rg.GET("/auth/logout", h.logout)
}

// signup godoc
// @Summary Register a new account
// @Description Creates an account and dispatches a confirmation email. The first account becomes admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Registration details"
// @Success 201 {object} dto.SignupResponse
// @Failure 409 {object} ErrorResponse "Account already exists"
// @Failure 422 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *authHandler) signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	user, err := h.authSvc.Signup(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SignupResponse{
		User:   dto.ToUserResponse(user),
		Detail: "User successfully created. Check your email for confirmation.",
	})
}

// login godoc
// @Summary Log in
// @Description Authenticates with email and password form fields and returns a bearer pair.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email address"
// @Param password formData string true "Password"
// @Success 200 {object} dto.TokenPair
// @Failure 401 {object} ErrorResponse "Invalid email, invalid password or unconfirmed email"
// @Failure 403 {object} ErrorResponse "Account banned"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	pair, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// logout godoc
// @Summary Log out
// @Description Blacklists the presented access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [get]
func (h *authHandler) logout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	token, found := middleware.GetAccessTokenFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "Not authenticated"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), token, user); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully logged out"})
}

// refreshToken godoc
// @Summary Refresh the bearer pair
// @Description Exchanges a valid refresh token, presented as the bearer credential, for a new pair.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.TokenPair
// @Failure 401 {object} ErrorResponse "Invalid refresh token"
// @Security BearerAuth
// @Router /auth/refresh_token [get]
func (h *authHandler) refreshToken(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		return
	}

	pair, err := h.authSvc.Refresh(c.Request.Context(), token)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, pair)
}

// confirmEmail godoc
// @Summary Confirm an email address
// @Description Consumes an email-scope token from the confirmation link.
// @Tags auth
// @Produce json
// @Param token path string true "Email confirmation token"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse "Verification error"
// @Router /auth/confirmed_email/{token} [get]
func (h *authHandler) confirmEmail(c *gin.Context) {
	alreadyConfirmed, err := h.authSvc.ConfirmEmail(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if alreadyConfirmed {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Your email is already confirmed"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Email confirmed"})
}

// requestEmail godoc
// @Summary Resend the confirmation email
// @Description Re-sends the confirmation email for an unconfirmed account. Always responds the same way so registered addresses cannot be probed.
// @Tags auth
// @Accept json
// @Produce json
// @Param email body dto.EmailRequest true "Email address"
// @Success 200 {object} dto.MessageResponse
// @Router /auth/request_email [post]
func (h *authHandler) requestEmail(c *gin.Context) {
	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	if err := h.authSvc.RequestConfirmation(c.Request.Context(), req.Email); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Check your email for confirmation"})
}

// forgotPassword godoc
// @Summary Request a password reset
// @Description Stores a one-time reset token on the account and emails it.
// @Tags auth
// @Produce json
// @Param email query string true "Email address"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse "Not found user."
// @Router /auth/forgot_password [get]
func (h *authHandler) forgotPassword(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Email is required"})
		return
	}

	if err := h.authSvc.ForgotPassword(c.Request.Context(), email); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Reset password token has been sent to your e-email."})
}

// resetPassword godoc
// @Summary Reset the password
// @Description Consumes a previously emailed reset token and sets a new password.
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body dto.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} ErrorResponse "Unknown user, token mismatch or password mismatch"
// @Router /auth/reset_password [patch]
func (h *authHandler) resetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Your password was successfully changed"})
}

// bearerToken extracts the raw bearer credential from the Authorization
// header, responding 401 when it is missing or malformed.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "Not authenticated"})
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "Authorization header format must be Bearer {token}"})
		return "", false
	}
	return parts[1], true
}

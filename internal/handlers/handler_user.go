package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snapshare/snapshare-api/internal/core/domain"
	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/dto"
	"github.com/snapshare/snapshare-api/internal/middleware"
)

// userHandler handles account and profile endpoints.
type userHandler struct {
	userSvc portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(userSvc portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userSvc: userSvc}
}

// registerPublicUserRoutes sets up the profile routes that need no token.
func registerPublicUserRoutes(r *gin.Engine, userSvc portssvc.UserSvcFacade) {
	h := newUserHandler(userSvc)
	r.GET("/api/users/profile/:username", h.profile)
}

// registerUserRoutes sets up the authenticated user routes.
func registerUserRoutes(rg *gin.RouterGroup, userSvc portssvc.UserSvcFacade) {
	h := newUserHandler(userSvc)

	users := rg.Group("/users")
	{
		users.GET("/me", h.me)
		users.PUT("/me/username", h.changeUsername)
		users.PATCH("/avatar", h.updateAvatar)
	}

	moderation := users.Group("", middleware.RequireRoles(domain.RoleAdmin, domain.RoleModerator))
	{
		moderation.PATCH("/ban/:username", h.ban)
		moderation.PATCH("/unban/:username", h.unban)
	}
}

// profile godoc
// @Summary Get a public profile
// @Description Returns the public profile of a user by username.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.UserProfile
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/profile/{username} [get]
func (h *userHandler) profile(c *gin.Context) {
	profile, err := h.userSvc.Profile(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// me godoc
// @Summary Get the current account
// @Description Returns full account details for the authenticated user, including upload count.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserInfo
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	info, err := h.userSvc.Info(c.Request.Context(), user)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// changeUsername godoc
// @Summary Change the username
// @Description Renames the authenticated account. Fails when the name is taken.
// @Tags users
// @Accept json
// @Produce json
// @Param username body dto.ChangeUsernameRequest true "New username"
// @Success 200 {object} dto.MessageResponse
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Security BearerAuth
// @Router /users/me/username [put]
func (h *userHandler) changeUsername(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.ChangeUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	if err := h.userSvc.ChangeUsername(c.Request.Context(), user, req.Username); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Username updated"})
}

// updateAvatar godoc
// @Summary Update the avatar
// @Description Uploads a new avatar image to object storage and stores its URL.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Avatar image file"
// @Success 200 {object} dto.AvatarResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/avatar [patch]
func (h *userHandler) updateAvatar(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Avatar file is required"})
		return
	}

	avatarURL, err := h.userSvc.UpdateAvatar(c.Request.Context(), user, file)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AvatarResponse{Username: user.Username, Avatar: avatarURL})
}

// ban godoc
// @Summary Ban a user
// @Description Bans a user by username. Admins and moderators only; moderators cannot ban other moderators or admins.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} ErrorResponse "Operation forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/ban/{username} [patch]
func (h *userHandler) ban(c *gin.Context) {
	h.setBan(c, true, "User banned")
}

// unban godoc
// @Summary Unban a user
// @Description Lifts a ban by username. Admins and moderators only.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} ErrorResponse "Operation forbidden"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/unban/{username} [patch]
func (h *userHandler) unban(c *gin.Context) {
	h.setBan(c, false, "User unbanned")
}

func (h *userHandler) setBan(c *gin.Context, banned bool, message string) {
	actor, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.userSvc.SetBan(c.Request.Context(), actor, c.Param("username"), banned); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

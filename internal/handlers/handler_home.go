package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/snapshare/snapshare-api/internal/dto"
)

// registerHomeRoutes sets up the root route.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", home)
}

// home godoc
// @Summary API greeting
// @Description Returns a welcome message.
// @Tags home
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func home(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Welcome to SnapShare"})
}

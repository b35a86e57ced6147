package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/dto"
)

// commentHandler handles image comments.
type commentHandler struct {
	commentSvc portssvc.CommentSvcFacade
}

// registerCommentRoutes sets up the authenticated comment routes.
func registerCommentRoutes(rg *gin.RouterGroup, commentSvc portssvc.CommentSvcFacade) {
	h := &commentHandler{commentSvc: commentSvc}

	comments := rg.Group("/comments")
	{
		comments.POST("", h.create)
		comments.GET("/image/:image_id", h.listByImage)
		comments.PUT("/:id", h.update)
		comments.DELETE("/:id", h.remove)
	}
}

// create godoc
// @Summary Comment on an image
// @Description Adds a comment to an existing image.
// @Tags comments
// @Accept json
// @Produce json
// @Param comment body dto.CreateCommentRequest true "Comment content and image ID"
// @Success 201 {object} dto.CommentResponse
// @Failure 404 {object} ErrorResponse "Image not found"
// @Security BearerAuth
// @Router /comments [post]
func (h *commentHandler) create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	comment, err := h.commentSvc.Create(c.Request.Context(), user, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCommentResponse(*comment))
}

// listByImage godoc
// @Summary List comments on an image
// @Description Returns all comments for the image, oldest first.
// @Tags comments
// @Produce json
// @Param image_id path int true "Image ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 404 {object} ErrorResponse "Image not found"
// @Security BearerAuth
// @Router /comments/image/{image_id} [get]
func (h *commentHandler) listByImage(c *gin.Context) {
	imageID, ok := pathID(c, "image_id")
	if !ok {
		return
	}

	comments, err := h.commentSvc.ListByImage(c.Request.Context(), imageID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponseSlice(comments))
}

// update godoc
// @Summary Edit a comment
// @Description Replaces a comment's content. Author only.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param comment body dto.UpdateCommentRequest true "New content"
// @Success 200 {object} dto.CommentResponse
// @Failure 403 {object} ErrorResponse "Operation forbidden"
// @Failure 404 {object} ErrorResponse "Comment not found"
// @Security BearerAuth
// @Router /comments/{id} [put]
func (h *commentHandler) update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	comment, err := h.commentSvc.Update(c.Request.Context(), user, commentID, req.Content)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponse(*comment))
}

// remove godoc
// @Summary Delete a comment
// @Description Removes a comment. Moderators and admins only.
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} ErrorResponse "Operation forbidden"
// @Failure 404 {object} ErrorResponse "Comment not found"
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *commentHandler) remove(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	commentID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.commentSvc.Delete(c.Request.Context(), user, commentID); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment deleted"})
}

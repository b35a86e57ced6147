package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/dto"
)

// tagHandler handles tag management.
type tagHandler struct {
	tagSvc portssvc.TagSvcFacade
}

// registerTagRoutes sets up the authenticated tag routes.
func registerTagRoutes(rg *gin.RouterGroup, tagSvc portssvc.TagSvcFacade) {
	h := &tagHandler{tagSvc: tagSvc}

	tags := rg.Group("/tags")
	{
		tags.POST("", h.create)
		tags.GET("", h.list)
		tags.GET("/:id", h.getByID)
		tags.PUT("/:id", h.update)
		tags.DELETE("/:id", h.remove)
	}
}

// create godoc
// @Summary Create a tag
// @Description Creates a tag, returning the existing one when the name is already taken.
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body dto.TagRequest true "Tag name"
// @Success 201 {object} dto.TagResponse
// @Security BearerAuth
// @Router /tags [post]
func (h *tagHandler) create(c *gin.Context) {
	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	tag, err := h.tagSvc.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTagResponse(*tag))
}

// list godoc
// @Summary List tags
// @Description Returns a page of tags ordered by name.
// @Tags tags
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} dto.TagResponse
// @Security BearerAuth
// @Router /tags [get]
func (h *tagHandler) list(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	tags, err := h.tagSvc.List(c.Request.Context(), offset, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTagResponseSlice(tags))
}

// getByID godoc
// @Summary Get a tag
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} dto.TagResponse
// @Failure 404 {object} ErrorResponse "Tag not found"
// @Security BearerAuth
// @Router /tags/{id} [get]
func (h *tagHandler) getByID(c *gin.Context) {
	tagID, ok := pathID(c, "id")
	if !ok {
		return
	}

	tag, err := h.tagSvc.GetByID(c.Request.Context(), tagID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTagResponse(*tag))
}

// update godoc
// @Summary Rename a tag
// @Description Renames a tag. Moderators and admins only.
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param tag body dto.TagRequest true "New tag name"
// @Success 200 {object} dto.TagResponse
// @Failure 403 {object} ErrorResponse "Operation forbidden"
// @Failure 409 {object} ErrorResponse "Tag name already in use"
// @Security BearerAuth
// @Router /tags/{id} [put]
func (h *tagHandler) update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	tagID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	tag, err := h.tagSvc.Update(c.Request.Context(), user, tagID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTagResponse(*tag))
}

// remove godoc
// @Summary Delete a tag
// @Description Removes a tag and its image links. Moderators and admins only.
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} ErrorResponse "Operation forbidden"
// @Failure 404 {object} ErrorResponse "Tag not found"
// @Security BearerAuth
// @Router /tags/{id} [delete]
func (h *tagHandler) remove(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	tagID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.tagSvc.Delete(c.Request.Context(), user, tagID); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Tag deleted"})
}

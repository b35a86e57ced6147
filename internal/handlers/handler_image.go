package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/dto"
)

// imageHandler handles image upload, metadata and transformation endpoints.
type imageHandler struct {
	imageSvc portssvc.ImageSvcFacade
}

// registerImageRoutes sets up the authenticated image routes.
func registerImageRoutes(rg *gin.RouterGroup, imageSvc portssvc.ImageSvcFacade) {
	h := &imageHandler{imageSvc: imageSvc}

	images := rg.Group("/images")
	{
		images.POST("", h.upload)
		images.GET("/:id", h.getByID)
		images.GET("/user/:user_id", h.listByUser)
		images.PUT("/:id", h.updateContent)
		images.DELETE("/:id", h.deleteImage)
		images.POST("/add_tag", h.addTag)
		images.POST("/transform/:id", h.transform)
		images.GET("/transformed/:id", h.getTransformed)
	}
}

// upload godoc
// @Summary Upload an image
// @Description Stores the file in object storage and records its metadata with up to 5 tags.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Param content formData string true "Image description"
// @Param tags formData []string false "Tag names" collectionFormat(multi)
// @Success 201 {object} dto.ImageResponse
// @Failure 400 {object} ErrorResponse "Maximum 5 tags allowed"
// @Security BearerAuth
// @Router /images [post]
func (h *imageHandler) upload(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Image file is required"})
		return
	}

	var req dto.CreateImageRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	image, err := h.imageSvc.Upload(c.Request.Context(), user, file, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToImageResponse(*image))
}

// getByID godoc
// @Summary Get an image
// @Description Returns image metadata including tags.
// @Tags images
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} dto.ImageResponse
// @Failure 404 {object} ErrorResponse "Image not found"
// @Security BearerAuth
// @Router /images/{id} [get]
func (h *imageHandler) getByID(c *gin.Context) {
	imageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	image, err := h.imageSvc.GetByID(c.Request.Context(), imageID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToImageResponse(*image))
}

// listByUser godoc
// @Summary List a user's images
// @Description Returns a page of images uploaded by the given user, newest first.
// @Tags images
// @Produce json
// @Param user_id path int true "User ID"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} dto.ImageResponse
// @Security BearerAuth
// @Router /images/user/{user_id} [get]
func (h *imageHandler) listByUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	images, err := h.imageSvc.ListByUser(c.Request.Context(), userID, skip, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToImageResponseSlice(images))
}

// updateContent godoc
// @Summary Update an image description
// @Description Replaces the description. Owner or moderator only.
// @Tags images
// @Accept json
// @Produce json
// @Param id path int true "Image ID"
// @Param image body dto.UpdateImageRequest true "New description"
// @Success 200 {object} dto.ImageResponse
// @Failure 403 {object} ErrorResponse "Operation forbidden"
// @Failure 404 {object} ErrorResponse "Image not found"
// @Security BearerAuth
// @Router /images/{id} [put]
func (h *imageHandler) updateContent(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	imageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}
	if req.Content == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Content is required"})
		return
	}

	image, err := h.imageSvc.UpdateContent(c.Request.Context(), user, imageID, *req.Content)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToImageResponse(*image))
}

// deleteImage godoc
// @Summary Delete an image
// @Description Removes the record and the stored object. Owner or moderator only.
// @Tags images
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} ErrorResponse "Operation forbidden"
// @Failure 404 {object} ErrorResponse "Image not found"
// @Security BearerAuth
// @Router /images/{id} [delete]
func (h *imageHandler) deleteImage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	imageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.imageSvc.Delete(c.Request.Context(), user, imageID); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Image deleted"})
}

// addTag godoc
// @Summary Tag an image
// @Description Attaches a tag to an image, creating the tag if needed. Owner or moderator only.
// @Tags images
// @Accept json
// @Produce json
// @Param tag body dto.AddTagRequest true "Image ID and tag name"
// @Success 200 {object} dto.ImageResponse
// @Failure 400 {object} ErrorResponse "Maximum 5 tags allowed"
// @Failure 403 {object} ErrorResponse "Operation forbidden"
// @Security BearerAuth
// @Router /images/add_tag [post]
func (h *imageHandler) addTag(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.AddTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	image, err := h.imageSvc.AddTag(c.Request.Context(), user, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToImageResponse(*image))
}

// transform godoc
// @Summary Transform an image
// @Description Builds a transformed rendition URL and a QR code pointing at it. Owner or moderator only.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Image ID"
// @Param transformation_type formData string true "Transformation type" Enums(resize, crop, effect, face_detect)
// @Param width formData int false "Target width"
// @Param height formData int false "Target height"
// @Param effect formData string false "Effect name"
// @Param overlay_image_url formData string false "Overlay image URL"
// @Success 200 {object} dto.TransformedImageResponse
// @Failure 400 {object} ErrorResponse "Invalid transformation type"
// @Failure 403 {object} ErrorResponse "Operation forbidden"
// @Security BearerAuth
// @Router /images/transform/{id} [post]
func (h *imageHandler) transform(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	imageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.TransformRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	result, err := h.imageSvc.Transform(c.Request.Context(), user, imageID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// getTransformed godoc
// @Summary Get the transformed rendition
// @Description Returns the stored transformed URL and a QR code pointing at it.
// @Tags images
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} dto.TransformedImageResponse
// @Failure 404 {object} ErrorResponse "Image has no transformed version"
// @Security BearerAuth
// @Router /images/transformed/{id} [get]
func (h *imageHandler) getTransformed(c *gin.Context) {
	imageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.imageSvc.GetTransformed(c.Request.Context(), imageID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

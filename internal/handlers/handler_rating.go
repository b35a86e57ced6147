package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/dto"
)

// ratingHandler handles image ratings.
type ratingHandler struct {
	ratingSvc portssvc.RatingSvcFacade
}

// registerRatingRoutes sets up the authenticated rating routes.
func registerRatingRoutes(rg *gin.RouterGroup, ratingSvc portssvc.RatingSvcFacade) {
	h := &ratingHandler{ratingSvc: ratingSvc}

	ratings := rg.Group("/ratings")
	{
		ratings.POST("/:image_id", h.rate)
		ratings.GET("/:image_id", h.average)
		ratings.DELETE("/:rating_id", h.remove)
	}
}

// rate godoc
// @Summary Rate an image
// @Description Records a 1 to 5 score. One rating per user per image, never on your own image.
// @Tags ratings
// @Accept json
// @Produce json
// @Param image_id path int true "Image ID"
// @Param rating body dto.RatingRequest true "Score"
// @Success 201 {object} dto.RatingResponse
// @Failure 400 {object} ErrorResponse "Score out of range or own image"
// @Failure 409 {object} ErrorResponse "Already rated"
// @Security BearerAuth
// @Router /ratings/{image_id} [post]
func (h *ratingHandler) rate(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	imageID, ok := pathID(c, "image_id")
	if !ok {
		return
	}

	var req dto.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	rating, err := h.ratingSvc.Rate(c.Request.Context(), user, imageID, req.Score)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToRatingResponse(*rating))
}

// average godoc
// @Summary Get an image's average rating
// @Description Returns the mean score to two decimal places.
// @Tags ratings
// @Produce json
// @Param image_id path int true "Image ID"
// @Success 200 {object} dto.AverageRatingResponse
// @Failure 404 {object} ErrorResponse "No ratings for this image"
// @Security BearerAuth
// @Router /ratings/{image_id} [get]
func (h *ratingHandler) average(c *gin.Context) {
	imageID, ok := pathID(c, "image_id")
	if !ok {
		return
	}

	avg, err := h.ratingSvc.Average(c.Request.Context(), imageID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, avg)
}

// remove godoc
// @Summary Delete a rating
// @Description Removes a rating. Moderators and admins only.
// @Tags ratings
// @Produce json
// @Param rating_id path int true "Rating ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} ErrorResponse "Operation forbidden"
// @Failure 404 {object} ErrorResponse "Rating not found"
// @Security BearerAuth
// @Router /ratings/{rating_id} [delete]
func (h *ratingHandler) remove(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	ratingID, ok := pathID(c, "rating_id")
	if !ok {
		return
	}

	if err := h.ratingSvc.Delete(c.Request.Context(), user, ratingID); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Rating deleted"})
}

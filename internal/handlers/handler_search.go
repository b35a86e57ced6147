package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/dto"
)

// searchHandler handles image search.
type searchHandler struct {
	searchSvc portssvc.SearchSvcFacade
}

// registerSearchRoutes sets up the authenticated search routes.
func registerSearchRoutes(rg *gin.RouterGroup, searchSvc portssvc.SearchSvcFacade) {
	h := &searchHandler{searchSvc: searchSvc}
	rg.GET("/search/images", h.searchImages)
}

// searchImages godoc
// @Summary Search images
// @Description Filters images by description keyword, tag, average rating bounds and creation date range.
// @Tags search
// @Produce json
// @Param keyword query string false "Substring of the description"
// @Param tag query string false "Tag name"
// @Param min_rating query int false "Minimum average rating (1..5)"
// @Param max_rating query int false "Maximum average rating (1..5)"
// @Param start_date query string false "Earliest creation date (YYYY-MM-DD)"
// @Param end_date query string false "Latest creation date (YYYY-MM-DD), inclusive"
// @Success 200 {array} dto.ImageResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /search/images [get]
func (h *searchHandler) searchImages(c *gin.Context) {
	var params dto.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithBindError(c, err)
		return
	}

	images, err := h.searchSvc.Search(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToImageResponseSlice(images))
}

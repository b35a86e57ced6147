package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/snapshare/snapshare-api/internal/apperrors"
	"github.com/snapshare/snapshare-api/internal/core/domain"
	"github.com/snapshare/snapshare-api/internal/middleware"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// respondWithError maps service-layer errors to HTTP responses. AppErrors
// carry their own status and detail; bare sentinels get a generic detail;
// anything else is a 500 with the cause logged, never surfaced.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Detail: appErr.Message})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Detail: "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Detail: "Resource already exists"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "Could not validate credentials"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Detail: "Operation forbidden"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: "Validation error"})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error"})
	}
}

// respondWithBindError maps request binding failures. Field validation
// failures return 422, malformed payloads 400.
func respondWithBindError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid request format"})
}

// pathID parses a numeric path parameter, responding 400 on garbage.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "Invalid " + name})
		return 0, false
	}
	return id, true
}

// currentUser fetches the authenticated user set by the auth middleware,
// responding 401 when absent.
func currentUser(c *gin.Context) (*domain.User, bool) {
	user, found := middleware.GetUserFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Detail: "Not authenticated"})
		return nil, false
	}
	return user, true
}

package handler

import (
	"errors"
	"net/http"

	"priyansh-be/internal/logger"
	"priyansh-be/internal/order"
	"priyansh-be/internal/store"
	"priyansh-be/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorResponse struct {
	Detail string                  `json:"detail"`
	Errors []validation.FieldError `json:"errors,omitempty"`
}

// writeError maps domain errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var verr *validation.ValidationError

	switch {
	case errors.Is(err, store.ErrUnavailable):
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "Database not configured"})
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Detail: "Request validation failed",
			Errors: verr.Fields,
		})
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
	case errors.Is(err, order.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Detail: err.Error()})
	default:
		_ = c.Error(err)
		logger.FromCtx(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: http.StatusText(http.StatusInternalServerError)})
	}
}

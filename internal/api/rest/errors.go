package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sorel-labs/sorel/internal/api/shared/errors"
	"github.com/sorel-labs/sorel/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, errors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errors.NewValidationError(message))
}

// respondError responds with the status matching the executor error
func respondError(c *gin.Context, err error) {
	apiErr := errors.AsAPIError(err)
	status := apiErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.FullPath()))
	}
	c.JSON(status, apiErr)
}

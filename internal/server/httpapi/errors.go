package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/permalist/internal/common"
)

// statusFromError maps domain errors to HTTP status codes. Anything not
// recognized is treated as an internal failure so storage details never
// leak to clients.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrNoToken),
		errors.Is(err, common.ErrInvalidAuthHeader),
		errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, common.ErrTokenMalformed),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrInvalidToken):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeError(c *gin.Context, err error) {
	status, msg := statusFromError(err)
	c.JSON(status, gin.H{"error": msg})
}

func abortError(c *gin.Context, err error) {
	status, msg := statusFromError(err)
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

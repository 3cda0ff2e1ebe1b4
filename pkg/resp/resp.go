package resp

import (
	"errors"
	"net/http"

	"github.com/amrit073/NEPGA/services"
	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// fail writes the error body. "detail" is what the bundled page scripts read.
func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"ok": false, "error": msg, "detail": msg})
}

func BadRequest(c *gin.Context, msg string) {
	fail(c, http.StatusBadRequest, msg)
}
func Unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	fail(c, http.StatusUnauthorized, msg)
}
func NotFound(c *gin.Context, msg string) {
	fail(c, http.StatusNotFound, msg)
}
func Conflict(c *gin.Context, msg string) {
	fail(c, http.StatusConflict, msg)
}
func TooManyRequests(c *gin.Context, msg string) {
	fail(c, http.StatusTooManyRequests, msg)
}
func ServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	fail(c, http.StatusInternalServerError, "internal server error")
}

// Error maps service errors onto HTTP responses.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		BadRequest(c, "Invalid status")
	case errors.Is(err, services.ErrNotFound):
		NotFound(c, "Application not found")
	case errors.Is(err, services.ErrUnauthorized):
		Unauthorized(c, "Could not validate credentials")
	case errors.Is(err, services.ErrTransitionNotAllowed):
		Conflict(c, err.Error())
	default:
		ServerError(c, err)
	}
}

package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every failure leaves the API as a JSON object with a single error string.

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func ServiceUnavailable(c *gin.Context, message string) {
	Write(c, http.StatusServiceUnavailable, message)
}

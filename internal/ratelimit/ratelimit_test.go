package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNilLimiterAllowsEverything(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var l *Limiter
	r := gin.New()
	r.POST("/login", LoginMiddleware(l), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < loginMaxAttempts*2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestNewWithoutAddrDisablesLimiter(t *testing.T) {
	assert.Nil(t, New("", ""))
}

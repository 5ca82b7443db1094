package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRolesRouter(role string, allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/admin",
		func(c *gin.Context) { c.Set(ContextUserRole, role) },
		RequireRoles(allowed...),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func TestRequireRoles(t *testing.T) {
	t.Run("member of allowed set passes", func(t *testing.T) {
		r := newRolesRouter("admin", "admin")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("role outside set is forbidden", func(t *testing.T) {
		r := newRolesRouter("usuario", "admin")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"Access denied: insufficient permissions"}`, w.Body.String())
	})

	t.Run("empty role is forbidden", func(t *testing.T) {
		r := newRolesRouter("", "admin", "usuario")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

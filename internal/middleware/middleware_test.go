package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stylelove/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func whoami(c *gin.Context) {
	id, ok := IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"guest": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id.UserID})
}

func do(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	tokens, err := auth.NewTokens("secret")
	require.NoError(t, err)
	token, err := tokens.Generate("user-1", "ada@example.com", "")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", RequireAuth(tokens), whoami)

	w := do(r, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/me", map[string]string{"Authorization": "Token abc"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid authorization header format")

	w = do(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")

	w = do(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"user-1"}`, w.Body.String())
}

func TestOptionalAuth(t *testing.T) {
	tokens, _ := auth.NewTokens("secret")
	token, _ := tokens.Generate("user-1", "", "")

	r := gin.New()
	r.GET("/me", OptionalAuth(tokens), whoami)

	w := do(r, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"guest":true}`, w.Body.String())

	w = do(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer " + token})
	assert.JSONEq(t, `{"id":"user-1"}`, w.Body.String())

	w = do(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminKey(t *testing.T) {
	r := gin.New()
	r.POST("/admin", AdminKey("k3y"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, "/admin", nil).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, "/admin", map[string]string{"X-Admin-Key": "wrong"}).Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodPost, "/admin", map[string]string{"X-Admin-Key": "k3y"}).Code)

	closed := gin.New()
	closed.POST("/admin", AdminKey(""), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	assert.Equal(t, http.StatusForbidden, do(closed, http.MethodPost, "/admin", map[string]string{"X-Admin-Key": ""}).Code)
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.GET("/chat", RateLimit(2), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/chat", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/chat", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/chat", nil).Code)
}

func TestRateLimitBudgetsAreIndependent(t *testing.T) {
	r := gin.New()
	r.GET("/search", RateLimit(1), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/chat", RateLimit(1), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/search", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/search", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/chat", nil).Code)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := gin.New()
	r.Use(m.Handler())
	r.GET("/outfits/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	do(r, http.MethodGet, "/outfits/1", nil)
	do(r, http.MethodGet, "/outfits/2", nil)
	do(r, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/outfits/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))
}

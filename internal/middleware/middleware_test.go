package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/wealth_tracker/internal/middleware"
	"github.com/SscSPs/wealth_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const secret = "middleware-secret"

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", append(handlers, func(c *gin.Context) {
		subject, _ := middleware.GetUserIDFromContext(c)
		c.String(http.StatusOK, subject)
	})...)
	return r
}

func get(r *gin.Engine, token, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(secret, "wealth-tracker"))

	assert.Equal(t, http.StatusUnauthorized, get(r, "", "").Code)

	token, err := utils.GenerateJWT("owner", secret, time.Hour, "wealth-tracker")
	require.NoError(t, err)
	w := get(r, token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "owner", w.Body.String())

	foreign, err := utils.GenerateJWT("owner", secret, time.Hour, "other-issuer")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, foreign, "").Code)
}

func TestRateLimit_PerClientIP(t *testing.T) {
	l := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 2})
	r := newRouter(middleware.RateLimit(l))

	assert.Equal(t, http.StatusOK, get(r, "", "10.0.0.1:1234").Code)
	w := get(r, "", "10.0.0.1:1234")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "", "10.0.0.1:1234").Code)

	assert.Equal(t, http.StatusOK, get(r, "", "10.0.0.2:1234").Code, "other clients keep their own budget")
}

func TestRateLimit_PerSubject(t *testing.T) {
	l := limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 1})
	r := newRouter(middleware.AuthMiddleware(secret, ""), middleware.RateLimit(l))

	alice, err := utils.GenerateJWT("alice", secret, time.Hour, "")
	require.NoError(t, err)
	bob, err := utils.GenerateJWT("bob", secret, time.Hour, "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, alice, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, alice, "10.0.0.9:1").Code)
	assert.Equal(t, http.StatusOK, get(r, bob, "10.0.0.1:1").Code)
}

func TestStructuredLoggingMiddleware_RequestID(t *testing.T) {
	r := newRouter(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))

	w := get(r, "", "")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
}

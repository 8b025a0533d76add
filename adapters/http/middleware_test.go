package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

func newLimitedRouter(limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(logger.NewNop()))

	limiter := NewRateLimiter(limit, window)
	router.POST("/contact", limiter.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	router := newLimitedRouter(3, time.Minute)

	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestRateLimiter_WindowResets(t *testing.T) {
	router := newLimitedRouter(1, 20*time.Millisecond)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/contact", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/contact", nil))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	time.Sleep(30 * time.Millisecond)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/contact", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRateLimiter_SweepsExpiredBuckets(t *testing.T) {
	limiter := NewRateLimiter(1, 10*time.Millisecond)

	for _, key := range []string{"1.1.1.1:/contact", "2.2.2.2:/contact", "3.3.3.3:/contact"} {
		assert.True(t, limiter.Allow(key))
	}

	time.Sleep(25 * time.Millisecond)

	assert.True(t, limiter.Allow("4.4.4.4:/contact"))

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Len(t, limiter.buckets, 1, "expired buckets must be dropped once the window passes")
}

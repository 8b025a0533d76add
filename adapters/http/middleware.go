package http

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/auth"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

const (
	GinContextKeyAdminID = "adminID"
	GinContextKeyRole    = "adminRole"
)

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyAdminID, claims.AdminID)
		c.Set(GinContextKeyRole, claims.Role)

		c.Next()
	}
}

func GetAdminIDFromGinContext(c *gin.Context) (uuid.UUID, bool) {
	adminID, ok := c.Get(GinContextKeyAdminID)
	if !ok {
		return uuid.Nil, false
	}
	adminIDUUID, ok := adminID.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return adminIDUUID, true
}

// ErrorMiddleware turns errors collected via c.Error into one JSON
// response with the right status code.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if status >= http.StatusInternalServerError {
				log.Error("Request failed", err)
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("Unhandled request error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

type rateBucket struct {
	count int
	reset time.Time
}

// RateLimiter is a fixed-window per-key limiter. State lives in memory,
// which is fine for a single-instance deployment.
type RateLimiter struct {
	limit     int
	window    time.Duration
	mu        sync.Mutex
	buckets   map[string]*rateBucket
	nextSweep time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		window:    window,
		buckets:   make(map[string]*rateBucket),
		nextSweep: time.Now().Add(window),
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	// Drop expired buckets so the map doesn't grow with every client
	// ever seen. At most one sweep per window.
	if now.After(rl.nextSweep) {
		for k, b := range rl.buckets {
			if now.After(b.reset) {
				delete(rl.buckets, k)
			}
		}
		rl.nextSweep = now.Add(rl.window)
	}

	b, ok := rl.buckets[key]
	if !ok || now.After(b.reset) {
		rl.buckets[key] = &rateBucket{count: 1, reset: now.Add(rl.window)}
		return true
	}

	if b.count >= rl.limit {
		return false
	}

	b.count++
	return true
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP() + ":" + c.FullPath()
		if !rl.Allow(key) {
			c.Error(apperror.NewRateLimited("rate limit exceeded for " + c.FullPath()))
			c.Abort()
			return
		}
		c.Next()
	}
}

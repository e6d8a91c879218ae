package handlers

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"roteiro/database"
	"roteiro/services"
)

// ─── Auth Middleware ──────────────────────────────────────────────────────────

// AuthRequired validates the Bearer token and stores the claims on the
// request context for handlers downstream.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}

		claims, err := services.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("userID", claims.ID)
		c.Set("claims", claims)
		c.Next()
	}
}

// requireDestinationOwner rejects the request unless the destination belongs
// to one of the caller's trips. Writes the error response and returns false
// on rejection.
func requireDestinationOwner(c *gin.Context, destinationID string) bool {
	owner, err := database.DestinationOwner(destinationID)
	if err != nil {
		if err == database.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify access"})
		}
		return false
	}
	if owner != c.GetString("userID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return false
	}
	return true
}

// ─── Rate Limiting ────────────────────────────────────────────────────────────

type ipLimiter struct {
	limiter *rate.Limiter
	lastHit time.Time
}

var (
	limiters   = make(map[string]*ipLimiter)
	limitersMu sync.Mutex
)

func getLimiter(ip string, rps rate.Limit, burst int) *rate.Limiter {
	limitersMu.Lock()
	defer limitersMu.Unlock()

	entry, ok := limiters[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(rps, burst)}
		limiters[ip] = entry
	}
	entry.lastHit = time.Now()
	return entry.limiter
}

func init() {
	// Drop limiters for IPs idle longer than 10 minutes
	go func() {
		for {
			time.Sleep(time.Minute)
			limitersMu.Lock()
			for ip, entry := range limiters {
				if time.Since(entry.lastHit) > 10*time.Minute {
					delete(limiters, ip)
				}
			}
			limitersMu.Unlock()
		}
	}()
}

// RateLimit throttles per client IP. Used on the relay endpoints that call
// paid third-party APIs.
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !getLimiter(c.ClientIP(), rps, burst).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}

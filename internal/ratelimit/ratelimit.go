package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const (
	loginMaxAttempts = 10
	loginWindow      = time.Minute
)

// Limiter counts login attempts per client IP in redis. A nil Limiter is
// valid and allows everything, so the API runs unchanged without redis.
type Limiter struct {
	client *redis.Client
}

func New(addr, password string) *Limiter {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, login rate limiting disabled")
		return nil
	}

	return &Limiter{client: client}
}

func (l *Limiter) allow(ctx context.Context, key string) bool {
	if l == nil {
		return true
	}

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		// Limiter failures never block logins.
		log.Warn().Err(err).Msg("rate limiter error, allowing request")
		return true
	}
	if n == 1 {
		l.client.Expire(ctx, key, loginWindow)
	}

	return n <= loginMaxAttempts
}

// LoginMiddleware throttles repeated login attempts from one address.
func LoginMiddleware(l *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("login_attempts:%s", c.ClientIP())
		if !l.allow(c.Request.Context(), key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts, try again later"})
			return
		}
		c.Next()
	}
}

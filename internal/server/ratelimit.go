// internal/server/ratelimit.go
package server

import (
	"net/http"
	"time"

	"nextcard-intake/internal/common/apperrors"
	"nextcard-intake/internal/common/logger"
	"nextcard-intake/internal/common/metrics"
	"nextcard-intake/internal/models"

	"github.com/redis/go-redis/v9"
)

// RateLimiter throttles the submission route with a per-IP fixed window
// counter in Redis. When Redis is unreachable it fails open: a limiter
// outage must not take intake down with it.
type RateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	logger logger.Logger
}

func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration, log logger.Logger) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		logger: log.WithFields(map[string]interface{}{"component": "ratelimit"}),
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := "ratelimit:submit:" + clientIP(r)

		count, err := rl.rdb.Incr(r.Context(), key).Result()
		if err != nil {
			rl.logger.WithError(err).Warn("rate limiter unavailable, allowing request", nil)
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			if err := rl.rdb.Expire(r.Context(), key, rl.window).Err(); err != nil {
				rl.logger.WithError(err).Warn("failed to set rate limit window", nil)
			}
		}

		if count > int64(rl.limit) {
			metrics.RateLimited.Inc()
			rl.logger.Warn("request rate limited", map[string]interface{}{
				"ip":    clientIP(r),
				"count": count,
			})
			e := apperrors.NewRateLimitError()
			writeJSON(w, e.HTTPStatus(), models.SubmitResponse{Success: false, Message: e.Message})
			return
		}

		next.ServeHTTP(w, r)
	})
}

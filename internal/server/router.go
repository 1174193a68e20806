// internal/server/router.go
package server

import (
	"net/http"

	"nextcard-intake/internal/common/logger"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the full HTTP surface: the rate-limited submission route,
// health and metrics, and static file serving for everything else.
func NewRouter(h *Handler, limiter *RateLimiter, log logger.Logger, staticDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(accessLogMiddleware(log))
	r.Use(corsMiddleware)

	r.With(limiter.Middleware).Post("/submit", h.submit)
	r.Get("/health", h.health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Any other path resolves to a file under the web root; "/" serves
	// index.html.
	r.Handle("/*", http.FileServer(http.Dir(staticDir)))

	return r
}

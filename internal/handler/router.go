package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterOptions configures NewRouter
type RouterOptions struct {
	// AllowedOrigins for CORS; empty allows any origin
	AllowedOrigins []string

	// Events serves the live event stream; nil leaves /events unrouted
	Events http.Handler
}

// NewRouter wires every route onto a chi router
func NewRouter(h *ReviewHandler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS(opts.AllowedOrigins))
	r.Use(PrometheusMetrics)

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	// Operational
	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	if opts.Events != nil {
		r.Method(http.MethodGet, "/events", opts.Events)
	}

	// API
	r.Get("/api", h.GetEndpoints)
	r.Get("/api/categories", h.ListCategories)
	r.Get("/api/users", h.ListUsers)
	r.Get("/api/reviews", h.ListReviews)
	r.Get("/api/reviews/{review_id}", h.GetReview)
	r.Patch("/api/reviews/{review_id}", h.PatchReview)
	r.Get("/api/reviews/{review_id}/comments", h.ListComments)
	r.Post("/api/reviews/{review_id}/comments", h.PostComment)
	r.Delete("/api/comments/{comment_id}", h.DeleteComment)

	return r
}

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/formsmith/formsmith/internal/service"
)

// NewRouter assembles the API surface. corsOrigins is a comma-separated
// allowlist; "*" opens it up.
func NewRouter(svc *service.Forms, corsOrigins string, maxBody int64) http.Handler {
	h := &Handlers{svc: svc}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: splitOrigins(corsOrigins),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Edit-Token"},
		MaxAge:         300,
	}))
	if maxBody > 0 {
		r.Use(maxBodyMiddleware(maxBody))
	}

	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.Generate)
		r.Post("/forms", h.Publish)
		r.Get("/forms/{id}", h.Load)
		r.Put("/forms/{id}", h.Update)
		r.Delete("/forms/{id}", h.Discard)
		r.Post("/forms/{id}/export", h.Export)
		r.Get("/forms/{id}/bundle/*", h.BundleFile)
	})

	return otelhttp.NewHandler(r, "formsmith-http")
}

func splitOrigins(s string) []string {
	if s == "" {
		return []string{"*"}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func maxBodyMiddleware(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

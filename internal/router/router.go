package router

import (
	"net/http"

	"pharmazen/internal/config"
	"pharmazen/internal/handler"
	"pharmazen/internal/metrics"
	"pharmazen/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	medicineHandler *handler.MedicineHandler,
	categoryHandler *handler.CategoryHandler,
	healthHandler *handler.HealthHandler,
	limiter *middleware.RateLimiter,
	corsConfig config.CORSConfig,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Recovery -> Logging -> metrics -> CORS -> rate limit
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(metrics.Middleware)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: corsConfig.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}).Handler)
	r.Use(chimiddleware.StripSlashes)
	r.Use(limiter.Handler)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/", handler.Root)
	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/medicines", func(r chi.Router) {
			r.Get("/", medicineHandler.List)
			r.Get("/max-price", medicineHandler.MaxPrice)
			r.Get("/filters", medicineHandler.FilterOptions)
		})
		r.Get("/categories", categoryHandler.List)
	})

	return r
}

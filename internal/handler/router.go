package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/todoism/todoism-go/internal/config"
	"github.com/todoism/todoism-go/internal/middleware"
	"github.com/todoism/todoism-go/internal/model"
	"github.com/todoism/todoism-go/internal/service"
	"go.uber.org/zap"
)

// Deps is everything the router needs to serve requests.
type Deps struct {
	Config   config.Config
	Logger   *zap.Logger
	Registry *prometheus.Registry
	Auth     *service.AuthService
	Items    *service.ItemService
}

// NewRouter builds the HTTP route table.
func NewRouter(d Deps) http.Handler {
	index := NewIndexHandler(d.Config.BaseURL)
	auth := NewAuthHandler(d.Auth, d.Config.BaseURL)
	items := NewItemHandler(d.Items, d.Config.BaseURL)
	metrics := middleware.NewMetrics(d.Registry)

	r := chi.NewRouter()
	if d.Config.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(metrics.Handler)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.Config.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Location", middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/", index.HandleIndex)
	r.Get("/health", index.HandleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(d.Config.RateLimitRPS, d.Config.RateLimitBurst))
		r.Post(pathToken, auth.HandleToken)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(d.Auth))

		r.Get(pathUser, auth.HandleCurrentUser)

		r.Get(pathItems, items.HandleList(model.FilterAll))
		r.Post(pathItems, items.HandleCreate)
		r.Get(pathActiveItems, items.HandleList(model.FilterActive))
		r.Get(pathCompletedItems, items.HandleList(model.FilterCompleted))
		r.Delete(pathCompletedItems, items.HandleClearCompleted)

		r.Get(pathItems+"/{item_id:[0-9]+}", items.HandleGet)
		r.Put(pathItems+"/{item_id:[0-9]+}", items.HandleReplace)
		r.Patch(pathItems+"/{item_id:[0-9]+}", items.HandleToggle)
		r.Delete(pathItems+"/{item_id:[0-9]+}", items.HandleDelete)
	})

	return r
}

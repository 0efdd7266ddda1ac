package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/adventureworks/purchasing/internal/purchasing/orders"
	"github.com/adventureworks/purchasing/internal/purchasing/persons"
	"github.com/adventureworks/purchasing/internal/purchasing/shipmethods"
	"github.com/adventureworks/purchasing/internal/purchasing/vendors"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger            *slog.Logger
	Config            *Config
	OrderHandler      *orders.Handler
	VendorHandler     *vendors.Handler
	ShipMethodHandler *shipmethods.Handler
	PersonHandler     *persons.Handler
}

// NewRouter constructs the chi.Router for the purchasing API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		params.OrderHandler.MountRoutes(r)
		params.VendorHandler.MountRoutes(r)
		params.ShipMethodHandler.MountRoutes(r)
		params.PersonHandler.MountRoutes(r)
	})

	return r
}

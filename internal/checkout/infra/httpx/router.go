package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the checkout API and the embedded storefront.
// static may be nil when only the API is wanted (tests).
func NewRouter(handler *Handler, static http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/api/pago", handler.ProcessPayment)
	r.Get("/health", handler.Health)

	if static != nil {
		r.Handle("/*", static)
	}
	return r
}

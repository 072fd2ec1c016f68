package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/boreacrutis/internal/service"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *service.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	r.Get("/state", h.GetState)
	r.Post("/actions", h.DispatchAction)
	r.Get("/tabs", h.ListTabs)

	r.Post("/import/{module}", h.Import)
	r.Get("/export/{module}/{tab}/{id}", h.Export)

	r.Get("/library", h.Library)

	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}

package router

import (
	"clockwise/internal/handlers/clock"
	"clockwise/internal/handlers/dashboard"
	"clockwise/transport/http/view"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Dashboard dashboard.Handler
	Clock     clock.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the dashboard at the root and the JSON API under /v1.
// Both expect the session middleware to run first.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Dashboard.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Clock.Router(routerGroup)
	})
}

// SetupStatic serves the embedded assets under /static.
func (r *Router) SetupStatic(router chi.Router) {
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(view.Static())))
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

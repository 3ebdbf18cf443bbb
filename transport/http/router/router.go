package router

import (
	"net/http"
	"posada/internal/handlers/guest"
	"posada/internal/handlers/occupation"
	"posada/internal/handlers/room"
	"posada/internal/handlers/user"
	"posada/transport/http/middleware"
	"posada/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Occupation occupation.Handler
	Guest      guest.Handler
	Room       room.Handler
	User       user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.App
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.RequestID())
	router.Use(r.App.Recover())
	router.Use(r.App.RateLimit())

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusNotFound, "Resource not found")
	})

	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMethodNotAllowed(w)
	})

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Occupation.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.App) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
	}
}

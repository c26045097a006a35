package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler builds the chi router. Routes live under the configured base path.
func (s *Server) Handler() http.Handler {
	root := chi.NewRouter()
	root.Use(s.recoverer, s.requestLogger)

	if s.basePath == "" || s.basePath == "/" {
		s.registerRoutes(root)
		return root
	}

	api := chi.NewRouter()
	s.registerRoutes(api)
	root.Mount(s.basePath, api)
	return root
}

func (s *Server) registerRoutes(r chi.Router) {
	r.Post("/auth/token/", s.login)
	r.Post("/auth/token/refresh/", s.refresh)

	r.Group(func(r chi.Router) {
		r.Use(s.requireBearer)

		r.Get("/products/", s.listProducts)
		r.Get("/products/{id}/", s.getProduct)

		r.Get("/orders/", s.listOrders)
		r.Post("/orders/", s.placeOrder)

		r.Get("/messages/", s.listMessages)
		r.Post("/messages/", s.sendMessage)
	})
}

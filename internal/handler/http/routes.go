package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// routes requiring a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/departments", h.createDepartment)
		r.Get("/departments", h.listDepartments)
		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.getUserDetail)
		r.Post("/salary", h.createSalary)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

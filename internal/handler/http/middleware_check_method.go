// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Tereshkin

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] intended to be registered
// as the router's MethodNotAllowed handler.
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method is
// not handled. This handler responds with 404 Not Found instead, hiding the
// existence of the route from callers probing with unsupported methods.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		utilised := false
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if route == r.URL.Path && method == r.Method {
				utilised = true
			}
			return nil
		})

		if !utilised {
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

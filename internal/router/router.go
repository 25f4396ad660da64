// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// blog API. Routes are mounted under a configurable base path.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"blogapi/internal/handlers"
	"blogapi/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. basePath must start with a slash, e.g. "/api/v1".
func New(basePath string, categories *handlers.Categories, posts *handlers.Posts, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	// Health check lives outside the base path.
	r.Get("/health", healthHandler)

	r.Route(basePath, func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categories.List)
			r.Get("/with-posts", categories.ListWithPosts)
			r.Get("/{code}", categories.Get)
			r.Get("/{name}/posts", categories.PostsByName)

			// Writes go through the rate limiter.
			r.Group(func(r chi.Router) {
				r.Use(limiter.Middleware)
				r.Post("/", categories.Save)
				r.Delete("/{code}", categories.Delete)
			})
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", posts.List)
			r.Get("/recent", posts.Recent)
			r.Get("/{id:[0-9]+}", posts.Get)

			r.Group(func(r chi.Router) {
				r.Use(limiter.Middleware)
				r.Post("/", posts.Save)
				r.Delete("/{id:[0-9]+}", posts.Delete)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

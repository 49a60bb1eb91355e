// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZipRequest)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))

	router.Get("/api/version/", h.getServerVersion)

	router.Post("/api/unique/check", h.checkUnique)
	router.Post("/api/unique/exists", h.exists)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

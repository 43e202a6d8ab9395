// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/waterlily-survey/cliparse"
	"github.com/danielhkuo/waterlily-survey/handlers"
	"github.com/danielhkuo/waterlily-survey/middleware"
)

// Banner is the body served at the API root.
const Banner = "waterlily survey API v1"

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	responseHandler := handlers.NewResponseHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Survey responses
	mux.HandleFunc("POST /api/responses", middleware.WithLogging(responseHandler.Create))
	mux.HandleFunc("GET /api/responses/{id}", middleware.WithLogging(responseHandler.Get))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Banner))
	})

	return mux
}

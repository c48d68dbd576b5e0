// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/kultura-quest/booths"
	"github.com/danielhkuo/kultura-quest/cliparse"
	"github.com/danielhkuo/kultura-quest/handlers"
	"github.com/danielhkuo/kultura-quest/middleware"
)

func NewRouter(conn *sql.DB, cfg cliparse.Config, reg *booths.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	boothHandler := handlers.NewBoothHandler(reg)
	userHandler := handlers.NewUserHandler(conn, cfg)
	completionHandler := handlers.NewCompletionHandler(conn, cfg, reg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Booth registry (public)
	mux.HandleFunc("GET /api/booths", middleware.WithLogging(boothHandler.ListBooths))

	// User accounts
	mux.HandleFunc("GET /api/users/{username}", middleware.WithLogging(userHandler.GetUser))
	mux.HandleFunc("POST /api/register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("POST /api/login", middleware.WithLogging(userHandler.Login))

	// Booth completions
	mux.HandleFunc("POST /api/users/{username}/completions", middleware.WithLogging(completionHandler.UpdateCompletion))

	// Unknown /api paths answer JSON, never the file server
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Endpoint not found")
	})

	// Everything else falls back to the static file tree
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	return mux
}

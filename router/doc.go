// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Kultura Quest API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(conn, cfg, reg)

# Endpoints

Health:

	GET /health

API (JSON, wrapped in request logging):

	GET  /api/booths                       - Public booth list
	GET  /api/users/{username}             - User profile + completions
	POST /api/register                     - Create an account
	POST /api/login                        - Check credentials
	POST /api/users/{username}/completions - Gate-checked completion upsert

Unknown /api paths get a JSON 404; every other path is served from the
static file tree rooted at cfg.StaticDir.

# CORS

The mux itself carries no CORS handling: main wraps it with
middleware.CORS, which also answers OPTIONS preflights with 204.

# Handler Initialization

The router creates handler instances with dependency injection:

	boothHandler := handlers.NewBoothHandler(reg)
	userHandler := handlers.NewUserHandler(conn, cfg)
	completionHandler := handlers.NewCompletionHandler(conn, cfg, reg)
*/
package router

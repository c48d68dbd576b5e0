// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Kultura Quest API server.

Kultura Quest is an event-booth check-in service: visitors register,
log in, and mark a fixed set of booths complete, each gated by a
per-booth shared password.

# Starting the Server

Everything has a default, so a plain run works:

	go run .

Or with flags:

	go run . -p 8000 -d kultura.db -s ./site

# Configuration

Optional settings (flag, or environment variable, or .env file):

  - PORT (-p): Server port (default: 8000)
  - KULTURA_DB_PATH (-d): SQLite database file (default: kultura.db)
  - STATIC_DIR (-s): Static file root (default: .)

The database file and its parent directory are created on first run.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (booths, users, completions)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - booths: Static booth registry
  - auth: Credential verification
  - db: SQLite schema and row operations
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

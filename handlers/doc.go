// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Kultura Quest API.

# Handler Types

Each handler is a struct with its dependencies injected:

  - BoothHandler: Public booth listing
  - UserHandler: Profile lookup, registration, login
  - CompletionHandler: Booth completion upserts

Handlers are created via constructor functions:

	userHandler := handlers.NewUserHandler(conn, cfg)
	completionHandler := handlers.NewCompletionHandler(conn, cfg, reg)

# Request Flow

Every handler is stateless: parse, validate, hit the store, respond.

	GET  /api/booths                       → ListBooths
	GET  /api/users/{username}             → GetUser
	POST /api/register                     → Register
	POST /api/login                        → Login
	POST /api/users/{username}/completions → UpdateCompletion

# Status Codes

	400 missing/empty required field
	401 bad login credentials
	403 wrong booth password
	404 unknown username, booth id, or endpoint
	409 duplicate username/email on registration

There is no session or token concept. Login re-checks the user's
password; a completion update re-checks the booth's password. Username
lookups are case-insensitive throughout; password comparison is exact.

# The User Payload

Every endpoint that resolves a user answers with the same shape:

	{"user": {"name", "username", "email", "completions": {"boothId": true}}}

The completions map lists only booths marked complete, and no response
ever carries a password.
*/
package handlers

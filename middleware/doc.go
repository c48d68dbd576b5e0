// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/booths", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(duration_ms). Each request gets a fresh UUID so the two lines can be
correlated.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows any origin, methods GET, POST, OPTIONS, and the Content-Type
header. Preflight OPTIONS requests are answered with 204 directly.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.RegisterRequest
	middleware.ParseJSONBody(r, &req)

ParseJSONBody never fails: a missing, empty, or unparseable body is
treated as an empty object, and the handler's own field checks turn
that into the right validation error.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used by the request logger.
*/
package middleware

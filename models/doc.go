// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: name, username, email, password
  - LoginRequest: username, password
  - CompletionRequest: boothId, boothPassword, completed

# Response Types

Types for JSON responses:

  - BoothsResponse: booths (public fields only)
  - UserResponse: user payload
  - ErrorResponse: error

# Domain Types

Internal data structures:

  - User: registered visitor; password never serialized
  - Booth: station definition including its gating password
  - BoothPublic: booth projection safe to send to clients
  - Completion: one (user, booth) row with a completed flag
  - UserPayload: user plus completions map, as returned to clients

The completions map in UserPayload contains only booths the user has
marked complete; a missing key means "not completed".
*/
package models

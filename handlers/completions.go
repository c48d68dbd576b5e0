// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/kultura-quest/auth"
	"github.com/danielhkuo/kultura-quest/booths"
	"github.com/danielhkuo/kultura-quest/cliparse"
	"github.com/danielhkuo/kultura-quest/db"
	"github.com/danielhkuo/kultura-quest/middleware"
	"github.com/danielhkuo/kultura-quest/models"
)

type CompletionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	reg *booths.Registry
}

func NewCompletionHandler(conn *sql.DB, cfg cliparse.Config, reg *booths.Registry) *CompletionHandler {
	return &CompletionHandler{db: conn, cfg: cfg, reg: reg}
}

// UpdateCompletion handles POST /api/users/{username}/completions
//
// The booth password is the only gate: whoever staffs the booth knows
// it and can flip the flag either way for any visitor.
func (h *CompletionHandler) UpdateCompletion(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	user, err := db.FindUserByUsername(h.db, username)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found.")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.CompletionRequest
	middleware.ParseJSONBody(r, &req)

	boothPassword := strings.TrimSpace(req.BoothPassword)
	if req.BoothID == "" || boothPassword == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Booth ID and password are required.")
		return
	}

	booth, found := h.reg.FindByID(req.BoothID)
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Booth not found.")
		return
	}

	if !auth.VerifyPassword(booth.Password, boothPassword) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Incorrect booth password.")
		return
	}

	if err := db.UpsertCompletion(h.db, user.ID, booth.ID, req.Completed); err != nil {
		slog.Error("failed to upsert completion", "error", err, "user_id", user.ID, "booth_id", booth.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update completion")
		return
	}

	slog.Info("completion updated", "user_id", user.ID, "booth_id", booth.ID, "completed", req.Completed)

	payload, err := buildUserPayload(h.db, user)
	if err != nil {
		slog.Error("failed to build user payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserResponse{User: payload})
}

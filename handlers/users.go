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
	"github.com/danielhkuo/kultura-quest/cliparse"
	"github.com/danielhkuo/kultura-quest/db"
	"github.com/danielhkuo/kultura-quest/middleware"
	"github.com/danielhkuo/kultura-quest/models"
)

type UserHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewUserHandler(conn *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: conn, cfg: cfg}
}

// buildUserPayload assembles the client-facing user shape: profile
// fields plus the completions map, never the password.
func buildUserPayload(conn *sql.DB, user models.User) (models.UserPayload, error) {
	completions, err := db.ListCompletions(conn, user.ID)
	if err != nil {
		return models.UserPayload{}, err
	}
	return models.UserPayload{
		Name:        user.Name,
		Username:    user.Username,
		Email:       user.Email,
		Completions: completions,
	}, nil
}

// GetUser handles GET /api/users/{username}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
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

	payload, err := buildUserPayload(h.db, user)
	if err != nil {
		slog.Error("failed to build user payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserResponse{User: payload})
}

// Register handles POST /api/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	middleware.ParseJSONBody(r, &req)

	name := strings.TrimSpace(req.Name)
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)

	if name == "" || username == "" || email == "" || password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	exists, err := db.UserConflictExists(h.db, username, email)
	if err != nil {
		slog.Error("failed to check user conflict", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		middleware.ErrorResponse(w, http.StatusConflict, "That username or email is already registered.")
		return
	}

	user, err := db.InsertUser(h.db, name, username, email, password)
	if errors.Is(err, db.ErrConflict) {
		// A concurrent registration won the race; same answer as the pre-check
		middleware.ErrorResponse(w, http.StatusConflict, "That username or email is already registered.")
		return
	}
	if err != nil {
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)

	payload, err := buildUserPayload(h.db, user)
	if err != nil {
		slog.Error("failed to build user payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.UserResponse{User: payload})
}

// Login handles POST /api/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	middleware.ParseJSONBody(r, &req)

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)

	if username == "" || password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	user, err := db.FindUserByUsername(h.db, username)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials.")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Username matching is case-insensitive; the password check is exact
	if !auth.VerifyPassword(user.Password, password) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)

	payload, err := buildUserPayload(h.db, user)
	if err != nil {
		slog.Error("failed to build user payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.UserResponse{User: payload})
}
